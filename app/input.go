package app

import "monolcd/hal"

// step sizes per field
var fieldStep = [fieldCount]int{
	FieldProgress:  5,
	FieldRadius:    1,
	FieldThickness: 1,
	FieldScroll:    5,
}

// applyKey updates s for one key event and reports whether it changed.
//
// Tab moves focus to the next field. Up, Right and '+' increase the focused
// value, Down, Left and '-' decrease it. Enter restores its default.
func applyKey(s State, ev hal.KeyEvent) (State, bool) {
	if !ev.Press {
		return s, false
	}

	next := s
	switch {
	case ev.Code == hal.KeyTab || ev.Rune == '\t':
		next.Focus = (s.Focus + 1) % fieldCount
	case ev.Code == hal.KeyUp || ev.Code == hal.KeyRight || ev.Rune == '+' || ev.Rune == '=':
		next = s.Set(s.Focus, s.Get(s.Focus)+fieldStep[s.Focus])
	case ev.Code == hal.KeyDown || ev.Code == hal.KeyLeft || ev.Rune == '-':
		next = s.Set(s.Focus, s.Get(s.Focus)-fieldStep[s.Focus])
	case ev.Code == hal.KeyEnter || ev.Rune == '\r' || ev.Rune == '\n':
		next = s.Set(s.Focus, DefaultState.Get(s.Focus))
	default:
		return s, false
	}
	return next, next != s
}
