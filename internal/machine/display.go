package machine

// Display returns a snapshot of the display, row-major with DisplayWidth
// cells per row. A true cell is a lit pixel.
func (m *Machine) Display() [DisplaySize]bool {
	return m.display
}

// Pixel returns whether the pixel at the given coordinates is lit.
// Coordinates wrap around the display edges.
func (m *Machine) Pixel(x, y int) bool {
	return m.display[pixelOffset(x, y)]
}

// LitPixels returns the number of lit pixels.
func (m *Machine) LitPixels() int {
	var count int
	for _, lit := range m.display {
		if lit {
			count++
		}
	}
	return count
}

func pixelOffset(x, y int) int {
	x %= DisplayWidth
	if x < 0 {
		x += DisplayWidth
	}
	y %= DisplayHeight
	if y < 0 {
		y += DisplayHeight
	}
	return y*DisplayWidth + x
}

func (m *Machine) clearDisplay() {
	m.display = [DisplaySize]bool{}
}

// draw XORs the sprite rows onto the display starting at the wrapped origin.
// Pixels that leave the display on one edge wrap around to the opposite one.
// It returns whether any lit pixel was turned off.
func (m *Machine) draw(originX, originY uint8, sprite []byte) bool {
	var collision bool
	for row, data := range sprite {
		for bit := range 8 {
			if data&(0x80>>bit) == 0 {
				continue
			}

			offset := pixelOffset(int(originX)+bit, int(originY)+row)
			if m.display[offset] {
				collision = true
			}
			m.display[offset] = !m.display[offset]
		}
	}
	return collision
}
