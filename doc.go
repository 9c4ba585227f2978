// Package arbor is a UI composition layer for RPG-style screens built on
// [Ebitengine].
//
// Arbor groups sprites into containers that move, hide, tint and fade as a
// unit, layers modal message and command windows on top, and drives screens
// through a table of commands and menus.
//
// # Quick start
//
// Screen logic in arbor is written as plain blocking code: a dialog call
// returns only once the player has answered it. [Run] hosts that logic on
// its own goroutine and hands control back to Ebitengine once per frame:
//
//	arbor.Run(arbor.RunConfig{Title: "Town", Width: 512, Height: 384},
//		func(h *arbor.Host) error {
//			scene := arbor.NewScene(arbor.SceneConfig{Driver: h})
//			defer scene.Dispose()
//			if scene.ShowConfirmMessage("Rest at the inn?") {
//				scene.ShowMessage("You feel refreshed.")
//			}
//			return nil
//		})
//
// Tests drive the same code with a [StepDriver] and a [ScriptedInput], so
// no window is needed.
//
// # Containers
//
// A [Container] owns keyed child sprites. Each child's position, depth and
// visibility are recorded as an [Offset] relative to the container origin;
// moving or hiding the container reapplies those offsets to every child.
// Children are created through factories, usually the Add helpers:
//
//	c := arbor.NewContainer(arbor.ContainerConfig{Name: "status", Viewport: vp})
//	c.AddIconSprite("face", 8, 8, "face_01")
//	o := c.AddOverlay("overlay", -1, -1)
//	o.DrawText("Lv 12", 40, 8, arbor.TextOptions{})
//	c.RecordAllOffsets()
//	c.SetPosition(100, 40)
//
// Overlays are transparent text layers with named color themes. Modal
// windows are owned by a container but keep their own absolute position.
//
// # Scenes and screens
//
// A [Scene] is a container sized to the screen with a background, an
// overlay and two message boxes. It implements the dialogs: [Scene.ShowMessage],
// [Scene.ShowConfirmMessage], [Scene.ShowChoiceMessage], [Scene.ShowChoice]
// and [Scene.ChooseNumber].
//
// A [Screen] runs a scene's main loop. Each input command is looked up in
// an [ActionRegistry]; entries either run an effect or open a menu from a
// [MenuRegistry] whose chosen key is looked up in turn.
//
// # Extras
//
// Tweens use [gween]. Lifecycle events can be bridged into a [Donburi]
// world with the arbor/ecs package. Translations load from gettext .po
// files and configuration from YAML.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package arbor
