package router

import (
	"strings"
	"testing"
)

func TestThrottleBlocksAfterLimit(t *testing.T) {
	throttle, err := NewLoginThrottle([]byte("test-salt"))
	if err != nil {
		t.Fatalf("fail to initialize throttle: %v", err)
	}
	defer throttle.Close()

	if throttle.Blocked("192.0.2.1") {
		t.Fatalf("fresh address must not be blocked")
	}

	for i := 0; i < loginAttemptLimit-1; i++ {
		throttle.Fail("192.0.2.1")
	}
	if throttle.Blocked("192.0.2.1") {
		t.Fatalf("address must stay open below the limit")
	}

	throttle.Fail("192.0.2.1")
	if !throttle.Blocked("192.0.2.1") {
		t.Fatalf("address must be blocked at the limit")
	}

	if throttle.Blocked("192.0.2.2") {
		t.Fatalf("other addresses must be unaffected")
	}
}

func TestThrottleResetClears(t *testing.T) {
	throttle, err := NewLoginThrottle([]byte("test-salt"))
	if err != nil {
		t.Fatalf("fail to initialize throttle: %v", err)
	}
	defer throttle.Close()

	for i := 0; i < loginAttemptLimit; i++ {
		throttle.Fail("192.0.2.1")
	}
	if !throttle.Blocked("192.0.2.1") {
		t.Fatalf("address must be blocked at the limit")
	}

	throttle.Reset("192.0.2.1")
	if throttle.Blocked("192.0.2.1") {
		t.Fatalf("reset must clear the counter")
	}
}

func TestThrottleHashesAddresses(t *testing.T) {
	throttle, err := NewLoginThrottle([]byte("test-salt"))
	if err != nil {
		t.Fatalf("fail to initialize throttle: %v", err)
	}
	defer throttle.Close()

	key := throttle.key("192.0.2.1")
	if strings.Contains(key, "192.0.2.1") {
		t.Fatalf("cache key must not expose the raw address")
	}
	if key != throttle.key("192.0.2.1") {
		t.Fatalf("hashing must be stable for the same address")
	}
	if key == throttle.key("192.0.2.2") {
		t.Fatalf("distinct addresses must hash differently")
	}
}
