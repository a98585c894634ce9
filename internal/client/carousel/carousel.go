// Package carousel implements the image cursor used by the car detail screen.
package carousel

// Cursor is a zero-based position in an ordered image sequence. Next and
// Prev saturate at the ends instead of wrapping.
type Cursor struct {
	index int
	count int
}

// New returns a cursor over count images, positioned at the first one.
// A non-positive count yields an empty cursor; the detail screen shows a
// placeholder and renders no navigation in that case.
func New(count int) *Cursor {
	if count < 0 {
		count = 0
	}
	return &Cursor{count: count}
}

func (c *Cursor) Index() int { return c.index }
func (c *Cursor) Count() int { return c.count }

// Empty reports whether there are no images to navigate.
func (c *Cursor) Empty() bool { return c.count == 0 }

// HasNext reports whether Next would move the cursor.
func (c *Cursor) HasNext() bool { return c.index < c.count-1 }

// HasPrev reports whether Prev would move the cursor.
func (c *Cursor) HasPrev() bool { return c.index > 0 }

// Next advances the cursor unless it is at the last image.
func (c *Cursor) Next() {
	if c.HasNext() {
		c.index++
	}
}

// Prev moves the cursor back unless it is at the first image.
func (c *Cursor) Prev() {
	if c.HasPrev() {
		c.index--
	}
}
