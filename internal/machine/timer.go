package machine

// DelayTimer returns the delay timer register.
func (m *Machine) DelayTimer() uint8 {
	return m.delay
}

// SetDelayTimer writes the delay timer register.
func (m *Machine) SetDelayTimer(value uint8) {
	m.delay = value
}

// SoundTimer returns the sound timer register.
func (m *Machine) SoundTimer() uint8 {
	return m.sound
}

// SetSoundTimer writes the sound timer register.
func (m *Machine) SetSoundTimer(value uint8) {
	m.sound = value
}

// SoundActive returns whether the buzzer should sound.
func (m *Machine) SoundActive() bool {
	return m.sound > 0
}

// TickTimers decrements both timers toward zero. The owner is expected to
// call it at 60Hz, independent of the instruction rate.
func (m *Machine) TickTimers() {
	if m.delay > 0 {
		m.delay--
	}
	if m.sound > 0 {
		m.sound--
	}
}
