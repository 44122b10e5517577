// Package wordarena is a word-bubble arena built on [Ebitengine] and the
// Chipmunk2D port [cp].
//
// Typed words become circular bubbles that drift and bounce inside a ring of
// walls. Holding a bubble turns it red; releasing early pops that one
// bubble, holding past the threshold pops every bubble with the same word.
// Each pop spawns a particle burst and a short scale-and-fade animation.
//
// # Quick start
//
//	cfg, err := wordarena.LoadConfig()
//	if err != nil { ... }
//	log := wordarena.NewLogger(cfg.LogLevel, os.Stderr)
//	wordarena.Run(cfg, wordarena.RunConfig{Title: "Word Arena"}, log)
//
// # Headless use
//
// [Arena] holds all state and takes the current time explicitly, so it can
// be driven without a window:
//
//	a, _ := wordarena.NewArena(wordarena.DefaultConfig())
//	w, _ := a.Add("cat")
//	a.PointerDown(w.ID, now)
//	a.Update(now.Add(1100 * time.Millisecond)) // long press: every "cat" pops
//	frame := a.Project(now)
//
// [Arena.Project] returns a [Frame] describing bubbles, particles and pop
// animations in stage coordinates.
//
// [Ebitengine]: https://ebitengine.org
// [cp]: https://github.com/jakecoffman/cp
package wordarena
