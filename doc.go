// Package sgl is a small graphics library for teaching programming.
//
// A Window is a single on-screen canvas that the program draws into
// and reads input from. Drawing calls return immediately and take
// effect on the next frame; interactive calls such as ReadInt,
// SelectOne, and SelectPoint block the calling goroutine until the
// user responds in the window. Every exported Window method is safe
// to call from any goroutine.
//
// A minimal program:
//
//	w, err := sgl.Open(sgl.WithTitle("Hello"), sgl.WithRange(5))
//	if err != nil {
//		log.Fatal(err)
//	}
//	w.DrawFunc(func(x float64) float64 { return x * x }, -5, 5)
//	name, err := w.ReadString("Your name?", "")
//	if err == nil {
//		w.DrawText(0, 4, "Hi, "+name)
//	}
//	w.WaitForExit()
//
// Blocking calls return ErrCanceled once the window has been closed,
// so interactive programs unwind cleanly when the user quits.
package sgl
