// SPDX-License-Identifier: MPL-2.0

package issue

import "github.com/charmbracelet/glamour"

type Id int

const (
	EngineNotFoundId Id = iota + 1
	ImageRefMissingId
)

type MarkdownMsg string

// Issue is a launch-stopping condition with a rendered help card.
type Issue struct {
	id    Id          // ID used to look up the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render returns the issue card rendered for terminal display.
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	engineNotFoundIssue = &Issue{
		id: EngineNotFoundId,
		mdMsg: `
# No container engine found

dbuild needs docker or podman on PATH to launch the build container.

## Things you can try
- Install docker or podman and make sure its daemon/service is running
- Verify the engine responds:
~~~
$ docker version
~~~
- Pin a specific engine in your config file:
~~~
container_engine: "podman"
~~~`,
	}

	imageRefMissingIssue = &Issue{
		id: ImageRefMissingId,
		mdMsg: `
# No build image configured

dbuild could not resolve which container image to run.

## Resolution order
1. The ` + "`DBUILD_IMAGE`" + ` environment variable
2. The ` + "`image`" + ` key in your config file
3. A ` + "`dbuild.image`" + ` file next to the dbuild executable

## Things you can try
- Export the image for this shell:
~~~
$ export DBUILD_IMAGE=registry.example.com/build/toolchain:latest
~~~
- Or write it once next to the executable:
~~~
$ echo registry.example.com/build/toolchain:latest > dbuild.image
~~~`,
	}
)

// EngineNotFound returns the issue card shown when neither docker nor
// podman is usable.
func EngineNotFound() *Issue { return engineNotFoundIssue }

// ImageRefMissing returns the issue card shown when no image reference
// resolves.
func ImageRefMissing() *Issue { return imageRefMissingIssue }
