package canvas

// Key identifies a keyboard key. Printable keys are their rune;
// special keys use the private-use values below.
type Key rune

// Special key constants.
const (
	KeyHome      Key = 0xF000
	KeyUp        Key = 0xF001
	KeyPgup      Key = 0xF002
	KeyLeft      Key = 0xF004
	KeyRight     Key = 0xF005
	KeyDown      Key = 0xF006
	KeyPgdown    Key = 0xF007
	KeyEnd       Key = 0xF008
	KeyInsert    Key = 0xF009
	KeyAlt       Key = 0xF00A
	KeyShift     Key = 0xF00B
	KeyCtl       Key = 0xF00C
	KeyBackspace Key = 0x08
	KeyEnter     Key = 0x0A
	KeyDelete    Key = 0x7F
	KeyEscape    Key = 0x1B
	KeySpace     Key = ' '
)

// Button identifies a mouse button. Values follow the toolkit button
// bitmask convention so a chord can be stored as a single int.
type Button int

// Mouse buttons.
const (
	ButtonLeft   Button = 1
	ButtonMiddle Button = 2
	ButtonRight  Button = 4
)
