package tetris

// ListenerID identifies a registered listener so it can be detached later.
type ListenerID uint64

type listener[F any] struct {
	id ListenerID
	fn F
}

// listeners is an ordered list of callbacks. Duplicate functions are kept
// as separate entries and each runs once per event.
type listeners[F any] struct {
	seq     ListenerID
	entries []listener[F]
}

func (l *listeners[F]) attach(fn F) ListenerID {
	l.seq++
	l.entries = append(l.entries, listener[F]{id: l.seq, fn: fn})
	return l.seq
}

func (l *listeners[F]) detach(id ListenerID) {
	for i, e := range l.entries {
		if e.id == id {
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return
		}
	}
}

// each calls visit for every listener in registration order. It iterates
// over a copy, so listeners may attach or detach while being notified.
func (l *listeners[F]) each(visit func(F)) {
	entries := append([]listener[F](nil), l.entries...)
	for _, e := range entries {
		visit(e.fn)
	}
}

// AttachGameOver registers fn to run when Update finds the freshly spawned
// piece has no room.
func (e *Engine) AttachGameOver(fn func()) ListenerID {
	return e.gameOver.attach(fn)
}

// DetachGameOver removes a game-over listener. Unknown ids are ignored.
func (e *Engine) DetachGameOver(id ListenerID) {
	e.gameOver.detach(id)
}

// AttachLevelUp registers fn to run with the new level whenever the level
// increases.
func (e *Engine) AttachLevelUp(fn func(level int)) ListenerID {
	return e.levelUp.attach(fn)
}

// DetachLevelUp removes a level-up listener. Unknown ids are ignored.
func (e *Engine) DetachLevelUp(id ListenerID) {
	e.levelUp.detach(id)
}

func (e *Engine) fireGameOver() {
	e.gameOver.each(func(fn func()) { fn() })
}

func (e *Engine) fireLevelUp() {
	level := e.level
	e.levelUp.each(func(fn func(int)) { fn(level) })
}
