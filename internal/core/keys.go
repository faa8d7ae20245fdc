package core

// holdUntilRelease marks a key that stays down until Release is called.
const holdUntilRelease = -1

// KeyState is the per-frame map from logical key name to held/not-held.
//
// Two kinds of sources feed it. Virtual buttons report both press and
// release, so they use Press/Release. Terminal key events carry no key-up,
// so a key press is held for a fixed number of ticks with Tap and kept alive
// by the terminal's key repeat.
type KeyState struct {
	held map[string]int // remaining ticks, or holdUntilRelease
}

// NewKeyState creates an empty key state.
func NewKeyState() *KeyState {
	return &KeyState{held: make(map[string]int)}
}

// Press marks key as held until Release.
func (k *KeyState) Press(key string) {
	k.held[key] = holdUntilRelease
}

// Release marks key as not held.
func (k *KeyState) Release(key string) {
	delete(k.held, key)
}

// Tap marks key as held for the given number of ticks. A key already held
// until release is left alone; a shorter tap is extended.
func (k *KeyState) Tap(key string, ticks int) {
	if ticks <= 0 {
		return
	}
	if cur, ok := k.held[key]; ok && (cur == holdUntilRelease || cur >= ticks) {
		return
	}
	k.held[key] = ticks
}

// IsPressed reports whether key is held.
func (k *KeyState) IsPressed(key string) bool {
	_, ok := k.held[key]
	return ok
}

// AnyPressed reports whether any of the aliases is held.
func (k *KeyState) AnyPressed(aliases []string) bool {
	for _, key := range aliases {
		if k.IsPressed(key) {
			return true
		}
	}
	return false
}

// Movement resolves a horizontal direction from two alias sets.
// Left aliases are checked first, so holding both sides moves left.
func (k *KeyState) Movement(left, right []string) int {
	if k.AnyPressed(left) {
		return -1
	}
	if k.AnyPressed(right) {
		return 1
	}
	return 0
}

// Tick ages tapped keys by one frame.
func (k *KeyState) Tick() {
	for key, remaining := range k.held {
		if remaining == holdUntilRelease {
			continue
		}
		if remaining <= 1 {
			delete(k.held, key)
			continue
		}
		k.held[key] = remaining - 1
	}
}

// Clear releases every key.
func (k *KeyState) Clear() {
	for key := range k.held {
		delete(k.held, key)
	}
}

// VirtualButton is an on-screen control that feeds KeyState with press and
// release events under a logical key name.
type VirtualButton struct {
	Key   string // Logical key name fed into KeyState (e.g. "left")
	Label string
	Area  Rect
}
