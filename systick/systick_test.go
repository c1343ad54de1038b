package systick

import (
	"errors"
	"testing"
	"time"

	"omibyte.io/cortexm/cortexm"
	"omibyte.io/cortexm/interrupt"
	"omibyte.io/cortexm/internal/testutil"
	"omibyte.io/cortexm/peripheral"
)

func setup(t *testing.T) (*testutil.Stub, *interrupt.Controller, *Timer) {
	t.Helper()
	s := testutil.NewStub()
	ctl := interrupt.New(s.Registers)
	ctl.InitializeFor(42)

	timer, err := New(ctl, 1*peripheral.MHz, Processor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s, ctl, timer
}

func TestNewRequiresInitializedTable(t *testing.T) {
	s := testutil.NewStub()
	ctl := interrupt.New(s.Registers)

	timer, err := New(ctl, 1*peripheral.MHz, Processor)
	if !errors.Is(err, peripheral.ErrOperationNotPermitted) {
		t.Errorf("expected ErrOperationNotPermitted, got %v", err)
	}
	if timer != nil {
		t.Error("expected no timer")
	}
	if s.SYST != (cortexm.SysTick{}) {
		t.Error("a rejected timer must not touch the counter")
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		source ClockSource
		csr    uint32
	}{
		{"processor", Processor, cortexm.SYST_CSR_TICKINT | cortexm.SYST_CSR_CLKSOURCE},
		{"external", External, cortexm.SYST_CSR_TICKINT},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := testutil.NewStub()
			ctl := interrupt.New(s.Registers)
			ctl.InitializeFor(42)
			s.SYST.CSR = cortexm.SYST_CSR_ENABLE | cortexm.SYST_CSR_CLKSOURCE
			s.SYST.CVR = 500

			timer, err := New(ctl, 48*peripheral.MHz, tc.source)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := s.SYST.CSR.Get(); got != tc.csr {
				t.Errorf("expected CSR %#x, got %#x", tc.csr, got)
			}
			if s.SYST.CVR.GetVALUE() != 0 {
				t.Error("expected the current value cleared")
			}
			if timer.IsRunning() {
				t.Error("expected the counter stopped")
			}
			if timer.Frequency() != 48*peripheral.MHz {
				t.Errorf("expected 48MHz, got %v", timer.Frequency())
			}
		})
	}
}

func TestRegisterCPUFrequencyStops(t *testing.T) {
	s, _, timer := setup(t)
	if err := timer.Schedule(func() {}, time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	timer.RegisterCPUFrequency(2*peripheral.MHz, External)

	if timer.IsRunning() {
		t.Error("expected the counter stopped")
	}
	if s.SYST.CSR.GetCLKSOURCE() {
		t.Error("expected the external clock selected")
	}
	if timer.Frequency() != 2*peripheral.MHz {
		t.Errorf("expected 2MHz, got %v", timer.Frequency())
	}
}

func TestSchedule(t *testing.T) {
	s, ctl, timer := setup(t)
	s.SYST.CVR = 77

	if err := timer.Schedule(func() {}, time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := s.SYST.RVR.GetRELOAD(); got != 1000 {
		t.Errorf("expected reload 1000, got %d", got)
	}
	if s.SYST.CVR.GetVALUE() != 0 {
		t.Error("expected the current value cleared")
	}
	if !timer.IsRunning() {
		t.Error("expected the counter running")
	}
	if !s.SYST.CSR.GetTICKINT() {
		t.Error("expected the interrupt enabled")
	}
	if !ctl.Verify(interrupt.SysTick, trampoline) {
		t.Error("expected the trampoline installed for SysTick")
	}
}

func TestScheduleClampsToOneCycle(t *testing.T) {
	for _, delay := range []time.Duration{0, time.Nanosecond, -time.Second} {
		s, _, timer := setup(t)
		if err := timer.Schedule(func() {}, delay); err != nil {
			t.Fatalf("%v: unexpected error: %v", delay, err)
		}
		if got := s.SYST.RVR.GetRELOAD(); got != 1 {
			t.Errorf("%v: expected reload 1, got %d", delay, got)
		}
		if !timer.IsRunning() {
			t.Errorf("%v: expected the counter running", delay)
		}
	}
}

func TestScheduleRejectsLongDelay(t *testing.T) {
	s, ctl, timer := setup(t)
	before := s.SYST

	err := timer.Schedule(func() {}, 17*time.Second)
	if !errors.Is(err, peripheral.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}

	if s.SYST != before {
		t.Error("a rejected delay must leave the counter untouched")
	}
	if timer.IsRunning() {
		t.Error("expected the counter stopped")
	}
	if ctl.Verify(interrupt.SysTick, trampoline) {
		t.Error("a rejected delay must not install the trampoline")
	}
}

func TestScheduleSupersedes(t *testing.T) {
	_, _, timer := setup(t)

	var first, second int
	if err := timer.Schedule(func() { first++ }, time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := timer.Schedule(func() { second++ }, 2*time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	trampoline()

	if first != 0 || second != 1 {
		t.Errorf("expected only the second callback, got %d and %d", first, second)
	}
	if timer.IsRunning() {
		t.Error("expected the counter stopped after firing")
	}
}

func TestScheduleClearsPending(t *testing.T) {
	_, ctl, timer := setup(t)
	ctl.SetPending(interrupt.SysTick)

	if err := timer.Schedule(func() {}, time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctl.Pending(interrupt.SysTick) {
		t.Error("expected a stale SysTick to be cleared")
	}
}

func TestCallbackReschedules(t *testing.T) {
	s, _, timer := setup(t)

	fired := 0
	var callback func()
	callback = func() {
		fired++
		if fired < 3 {
			if err := timer.Schedule(callback, 5*time.Millisecond); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}
	}

	if err := timer.Schedule(callback, time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	trampoline()
	if !timer.IsRunning() || s.SYST.RVR.GetRELOAD() != 5000 {
		t.Errorf("expected a rearmed counter, reload %d", s.SYST.RVR.GetRELOAD())
	}

	trampoline()
	trampoline()
	if fired != 3 {
		t.Errorf("expected 3 callbacks, got %d", fired)
	}
	if timer.IsRunning() {
		t.Error("expected the counter stopped after the last callback")
	}
}

func TestCancel(t *testing.T) {
	s, _, timer := setup(t)
	if err := timer.Schedule(func() {}, 10*time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	timer.Cancel()

	if timer.IsRunning() {
		t.Error("expected the counter stopped")
	}
	if got := s.SYST.RVR.GetRELOAD(); got != 10000 {
		t.Errorf("expected the reload kept, got %d", got)
	}
	if !s.SYST.CSR.GetTICKINT() || !s.SYST.CSR.GetCLKSOURCE() {
		t.Error("cancel must keep the clock configuration")
	}
}

func TestClose(t *testing.T) {
	s, ctl, timer := setup(t)
	if err := timer.Schedule(func() {}, time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := s.NVIC

	if err := timer.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if timer.IsRunning() {
		t.Error("expected the counter stopped")
	}
	if s.NVIC != before {
		t.Error("SysTick is a core exception and has no NVIC bit to clear")
	}
	if !ctl.Verify(interrupt.SysTick, trampoline) {
		t.Error("expected the trampoline to remain installed")
	}
}

func TestSetPriority(t *testing.T) {
	_, ctl, timer := setup(t)
	timer.SetPriority(0x10)
	if got := ctl.Priority(interrupt.SysTick); got != 0x10 {
		t.Errorf("expected 0x10, got %#x", got)
	}
}

func TestReload(t *testing.T) {
	tests := []struct {
		name      string
		frequency peripheral.Hertz
		delay     time.Duration
		want      uint32
		err       error
	}{
		{"1ms at 1MHz", 1 * peripheral.MHz, time.Millisecond, 1000, nil},
		{"1ms at 48MHz", 48 * peripheral.MHz, time.Millisecond, 48000, nil},
		{"zero", 48 * peripheral.MHz, 0, 1, nil},
		{"two cycles", 1 * peripheral.MHz, 2 * time.Microsecond, 2, nil},
		{"largest", 1 * peripheral.MHz, 16777215 * time.Microsecond, 0x00FFFFFF, nil},
		{"one past the largest", 1 * peripheral.MHz, 16777216 * time.Microsecond, 0, peripheral.ErrInvalidArgument},
		{"one second at 48MHz", 48 * peripheral.MHz, time.Second, 0, peripheral.ErrInvalidArgument},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Reload(tc.frequency, tc.delay)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Errorf("expected %v, got %v", tc.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestMaxDelay(t *testing.T) {
	got := MaxDelay(1 * peripheral.MHz)
	if got < 16777214*time.Microsecond || got > 16777216*time.Microsecond {
		t.Errorf("expected about 16.777215s, got %v", got)
	}
	if _, err := Reload(1*peripheral.MHz, got); err != nil {
		t.Errorf("the maximum delay must be schedulable: %v", err)
	}
}

func TestScheduleRequiresInstalledTable(t *testing.T) {
	tests := []struct {
		name  string
		leave func(s *testutil.Stub, ctl *interrupt.Controller)
	}{
		{"reverted", func(s *testutil.Stub, ctl *interrupt.Controller) {
			ctl.Revert()
		}},
		{"relocated elsewhere", func(s *testutil.Stub, ctl *interrupt.Controller) {
			s.SCS.VTOR.SetTBLOFF(cortexm.TableAddress(s.Boot[:]))
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, ctl, timer := setup(t)
			tc.leave(s, ctl)
			before := s.SYST

			err := timer.Schedule(func() {}, time.Millisecond)
			if !errors.Is(err, peripheral.ErrOperationNotPermitted) {
				t.Fatalf("expected ErrOperationNotPermitted, got %v", err)
			}
			if s.SYST != before {
				t.Error("a rejected schedule must leave the counter untouched")
			}
			if timer.IsRunning() {
				t.Error("expected the counter stopped")
			}
		})
	}
}
