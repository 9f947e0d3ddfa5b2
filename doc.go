// Package wordreel is a retained-mode word animation sequencer for [Ebitengine].
//
// A [WordSequencer] cycles through a catalog of [Word]s. Each word is split
// into one node per character; the characters animate in with a staggered
// elastic tween, hold, animate out, and the next word follows. The start of
// every entrance triggers a [ProjectBurst] that loads the word's project
// images in the background and bursts them out from the viewport center to
// spread-out placements, where each holds and fades away.
//
// # Quick start
//
//	stage := wordreel.NewStage(1280, 720)
//	projects := wordreel.NewContainer("projects")
//	projects.Class = "project-container"
//	stage.Root().AddChild(projects)
//	heading := wordreel.NewContainer("h1")
//	heading.Font = font
//	heading.SetPosition(640, 360)
//	stage.Root().AddChild(heading)
//
//	seq := wordreel.NewWordSequencer(stage, wordreel.DefaultCatalog(),
//		wordreel.HTTPLoader{}, wordreel.DefaultConfig())
//	if err := seq.Start(); err != nil {
//		log.Fatal(err)
//	}
//	wordreel.Run(stage, wordreel.RunConfig{Title: "wordreel"})
//
// For full control, implement [ebiten.Game] yourself and call
// [Stage.Update] and [Stage.Draw] directly.
//
// # Scene graph
//
// Every visual element is a [Node]. Nodes form a tree rooted at
// [Stage.Root]. Children inherit their parent's transform and alpha. Nodes are
// located with [Node.Find]: ".name" matches Class, "#name" or a bare word
// matches Name.
//
// # Threading
//
// The stage is single-threaded. Image loads run on background goroutines and
// hand their results back through [Stage.Post], which is drained at the start
// of the next [Stage.Update].
//
// [Ebitengine]: https://ebitengine.org
package wordreel
