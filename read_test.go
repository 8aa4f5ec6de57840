package sgl

import (
	"errors"
	"testing"

	"github.com/veselink1/SGL/canvas"
	"github.com/veselink1/SGL/geom"
)

func TestReadStringScripted(t *testing.T) {
	w, c := openTestWindow(t)
	c.ScriptText("Ada")
	got, err := w.ReadString("Your name?", "")
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if got != "Ada" {
		t.Fatalf("ReadString = %q, want %q", got, "Ada")
	}
}

func TestReadIntRepromptsUntilParsable(t *testing.T) {
	w, c := openTestWindow(t)
	c.ScriptText("not a number")
	c.ScriptText(" 42 ")
	got, err := w.ReadInt("How many?", 7)
	if err != nil {
		t.Fatalf("ReadInt: %v", err)
	}
	if got != 42 {
		t.Fatalf("ReadInt = %d, want 42", got)
	}
}

func TestReadFloat64(t *testing.T) {
	w, c := openTestWindow(t)
	c.ScriptText("3.5")
	got, err := w.ReadFloat64("Speed?", 1)
	if err != nil {
		t.Fatalf("ReadFloat64: %v", err)
	}
	if got != 3.5 {
		t.Fatalf("ReadFloat64 = %g, want 3.5", got)
	}
}

func TestReadInt64(t *testing.T) {
	w, c := openTestWindow(t)
	c.ScriptText("9000000000")
	got, err := w.ReadInt64("Big?", 0)
	if err != nil {
		t.Fatalf("ReadInt64: %v", err)
	}
	if got != 9000000000 {
		t.Fatalf("ReadInt64 = %d, want 9000000000", got)
	}
}

func TestSelectOneResolvedByClick(t *testing.T) {
	w, c := openTestWindow(t)
	type result struct {
		idx int
		err error
	}
	done := make(chan result, 1)
	go func() {
		idx, err := w.SelectOne("Pick one", []string{"rock", "paper", "scissors"}, 0)
		done <- result{idx, err}
	}()

	waitUntil(t, "choice dialog open", c.DialogOpen)
	// 800px wide, 3 options: x=700 lands on index 2.
	c.Inject(canvas.MousePress{X: 700, Y: 300, Button: canvas.ButtonLeft})

	r := <-done
	if r.err != nil {
		t.Fatalf("SelectOne: %v", r.err)
	}
	if r.idx != 2 {
		t.Fatalf("SelectOne = %d, want 2", r.idx)
	}
}

func TestSelectItemReturnsOptionText(t *testing.T) {
	w, c := openTestWindow(t)
	c.ScriptChoice(1)
	got, err := w.SelectItem("Pick one", []string{"red", "green", "blue"}, 0)
	if err != nil {
		t.Fatalf("SelectItem: %v", err)
	}
	if got != "green" {
		t.Fatalf("SelectItem = %q, want %q", got, "green")
	}
}

func TestSelectOneRejectsEmptyOptions(t *testing.T) {
	w, _ := openTestWindow(t)
	if _, err := w.SelectOne("Pick one", nil, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("SelectOne(nil options) = %v, want ErrInvalidArgument", err)
	}
}

func TestYesOrNo(t *testing.T) {
	w, c := openTestWindow(t)
	c.ScriptChoice(0)
	yes, err := w.YesOrNo("Continue?", false)
	if err != nil {
		t.Fatalf("YesOrNo: %v", err)
	}
	if !yes {
		t.Fatal("YesOrNo = false, want true for option 0")
	}
}

func TestNotifyBlocksUntilDismissed(t *testing.T) {
	w, c := openTestWindow(t)
	done := make(chan error, 1)
	go func() { done <- w.Notify("heads up") }()

	waitUntil(t, "notice open", c.DialogOpen)
	select {
	case err := <-done:
		t.Fatalf("Notify returned before dismissal: %v", err)
	default:
	}
	c.Inject(canvas.KeyPress{Key: canvas.KeyEnter})
	if err := <-done; err != nil {
		t.Fatalf("Notify: %v", err)
	}
}

func TestSelectPoint(t *testing.T) {
	w, c := openTestWindow(t, WithTitle("picker"))
	type result struct {
		p   geom.Point
		err error
	}
	done := make(chan result, 1)
	go func() {
		p, err := w.SelectPoint()
		done <- result{p, err}
	}()

	// 60 pixels per unit: pixel (460, 240) is logical (1, 1). Keep
	// nudging the pointer until the armed subscription previews the
	// coordinates in the title.
	waitUntil(t, "pointer preview in title", func() bool {
		c.Inject(canvas.MouseMove{X: 460, Y: 240})
		return c.Title() == "picker (1.00, 1.00)"
	})
	c.Inject(canvas.MousePress{X: 460, Y: 240, Button: canvas.ButtonLeft})

	r := <-done
	if r.err != nil {
		t.Fatalf("SelectPoint: %v", r.err)
	}
	if r.p.Distance(geom.Pt(1, 1)) > 1e-9 {
		t.Fatalf("SelectPoint = %v, want (1, 1)", r.p)
	}
	waitUntil(t, "title restored", func() bool { return c.Title() == "picker" })
}

func TestBlockingCallCanceledOnClose(t *testing.T) {
	w, c := openTestWindow(t)
	done := make(chan error, 1)
	go func() {
		_, err := w.SelectOne("Pick one", []string{"a", "b"}, 0)
		done <- err
	}()

	waitUntil(t, "dialog open", c.DialogOpen)
	w.Close()
	if err := <-done; !errors.Is(err, ErrCanceled) {
		t.Fatalf("SelectOne on closed window = %v, want ErrCanceled", err)
	}
}

func TestConcurrentDialogsSerialized(t *testing.T) {
	w, c := openTestWindow(t)
	c.ScriptText("first")
	c.ScriptText("second")

	results := make(chan string, 2)
	for i := 0; i < 2; i++ {
		go func() {
			s, err := w.ReadString("?", "")
			if err != nil {
				results <- "error: " + err.Error()
				return
			}
			results <- s
		}()
	}

	got := map[string]bool{<-results: true, <-results: true}
	if !got["first"] || !got["second"] {
		t.Fatalf("concurrent reads = %v, want both scripted answers", got)
	}
}
