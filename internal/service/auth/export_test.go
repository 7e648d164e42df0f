package auth

import "time"

// SetTimeFunc overrides the service clock. Only tests can reach this; the
// production clock stays time.Now.
func (s *SessionService) SetTimeFunc(now func() time.Time) {
	s.timeFunc = now
}
