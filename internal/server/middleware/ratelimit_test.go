package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	defer rl.Close()

	for i := 0; i < 3; i++ {
		if !rl.Allow("user-a") {
			t.Fatalf("запрос %d должен пройти", i+1)
		}
	}
	if rl.Allow("user-a") {
		t.Error("четвёртый запрос должен быть отклонён")
	}

	// Другой ключ лимит не делит
	if !rl.Allow("user-b") {
		t.Error("другой пользователь не должен упираться в чужой лимит")
	}
}

func TestRateLimiterWindowSlides(t *testing.T) {
	rl := NewRateLimiter(2, 50*time.Millisecond)
	defer rl.Close()

	rl.Allow("u")
	rl.Allow("u")
	if rl.Allow("u") {
		t.Fatal("лимит исчерпан, запрос должен быть отклонён")
	}

	time.Sleep(60 * time.Millisecond)
	if !rl.Allow("u") {
		t.Error("после окна запросы должны снова проходить")
	}
}
