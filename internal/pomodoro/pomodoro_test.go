package pomodoro_test

import (
	"testing"
	"time"

	"eisenhower-matrix/config"
	"eisenhower-matrix/internal/pomodoro"
)

func testConfig() config.PomodoroConfig {
	return config.PomodoroConfig{
		WorkMinutes:             25,
		ShortBreakMinutes:       5,
		LongBreakMinutes:        15,
		SessionsBeforeLongBreak: 4,
	}
}

func drain(t *pomodoro.Timer) []pomodoro.Event {
	var out []pomodoro.Event
	for {
		select {
		case e := <-t.Events():
			out = append(out, e)
		default:
			return out
		}
	}
}

func TestStartPauseResume(t *testing.T) {
	timer := pomodoro.New(testConfig())

	st := timer.Start()
	if st.State != pomodoro.StateRunning || st.Phase != pomodoro.PhaseWork {
		t.Fatalf("after start: %+v", st)
	}
	if st.Remaining != 25*time.Minute {
		t.Errorf("remaining = %v, want 25m", st.Remaining)
	}

	timer.Tick(10 * time.Minute)
	st, err := timer.Pause()
	if err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if st.Remaining != 15*time.Minute {
		t.Errorf("paused remaining = %v, want 15m", st.Remaining)
	}

	// Time does not pass while paused.
	timer.Tick(5 * time.Minute)
	if got := timer.Status().Remaining; got != 15*time.Minute {
		t.Errorf("remaining after paused tick = %v, want 15m", got)
	}

	if _, err := timer.Resume(); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if timer.Status().State != pomodoro.StateRunning {
		t.Error("not running after resume")
	}
}

func TestInvalidTransitions(t *testing.T) {
	timer := pomodoro.New(testConfig())

	if _, err := timer.Pause(); err != pomodoro.ErrNotRunning {
		t.Errorf("pause while idle: err = %v", err)
	}
	if _, err := timer.Resume(); err != pomodoro.ErrNotPaused {
		t.Errorf("resume while idle: err = %v", err)
	}
}

func TestWorkPhaseCompletion(t *testing.T) {
	timer := pomodoro.New(testConfig())
	timer.Start()

	st := timer.Tick(25 * time.Minute)
	if st.State != pomodoro.StateIdle {
		t.Errorf("state = %s, want idle after completion", st.State)
	}
	if st.Phase != pomodoro.PhaseShortBreak {
		t.Errorf("phase = %s, want shortBreak", st.Phase)
	}
	if st.Sessions != 1 {
		t.Errorf("sessions = %d, want 1", st.Sessions)
	}

	events := drain(timer)
	if len(events) == 0 {
		t.Fatal("no events emitted")
	}
	last := events[len(events)-1]
	if last.Kind != pomodoro.EventSessionComplete || last.Phase != pomodoro.PhaseWork {
		t.Errorf("last event = %+v", last)
	}
}

func TestLongBreakEveryFourthSession(t *testing.T) {
	timer := pomodoro.New(testConfig())

	runPhase := func(d time.Duration) {
		timer.Start()
		timer.Tick(d)
	}

	for i := 0; i < 3; i++ {
		runPhase(25 * time.Minute) // work
		if got := timer.Status().Phase; got != pomodoro.PhaseShortBreak {
			t.Fatalf("session %d: phase = %s, want shortBreak", i+1, got)
		}
		runPhase(5 * time.Minute) // break
	}

	runPhase(25 * time.Minute) // fourth work session
	st := timer.Status()
	if st.Phase != pomodoro.PhaseLongBreak {
		t.Errorf("phase = %s, want longBreak after 4th session", st.Phase)
	}
	if st.Remaining != 15*time.Minute {
		t.Errorf("remaining = %v, want 15m", st.Remaining)
	}
}

func TestTickEmitsProgress(t *testing.T) {
	timer := pomodoro.New(testConfig())
	timer.Start()
	timer.Tick(time.Minute)

	events := drain(timer)
	if len(events) != 1 || events[0].Kind != pomodoro.EventTick {
		t.Fatalf("events = %+v", events)
	}
	if events[0].Remaining != 24*time.Minute {
		t.Errorf("remaining = %v, want 24m", events[0].Remaining)
	}
}

func TestReset(t *testing.T) {
	timer := pomodoro.New(testConfig())
	timer.Start()
	timer.Tick(25 * time.Minute)

	st := timer.Reset()
	if st.State != pomodoro.StateIdle || st.Phase != pomodoro.PhaseWork || st.Sessions != 0 {
		t.Errorf("after reset: %+v", st)
	}
}
