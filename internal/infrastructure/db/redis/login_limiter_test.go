package redis

import (
	"testing"
	"time"
)

func TestNewLoginLimiterDefaults(t *testing.T) {
	l := NewLoginLimiter(nil, 0, 0)
	if l.maxAttempts != 10 {
		t.Errorf("zero maxAttempts resolved to %d", l.maxAttempts)
	}
	if l.window != 15*time.Minute {
		t.Errorf("zero window resolved to %v", l.window)
	}

	l = NewLoginLimiter(nil, 3, time.Minute)
	if l.maxAttempts != 3 || l.window != time.Minute {
		t.Errorf("explicit settings overridden: attempts=%d window=%v", l.maxAttempts, l.window)
	}
}

func TestLoginLimiterKey(t *testing.T) {
	l := NewLoginLimiter(nil, 1, time.Minute)
	if got := l.key("Ivan Petrov"); got != "login_fail:Ivan Petrov" {
		t.Errorf("key format changed: %q", got)
	}
}
