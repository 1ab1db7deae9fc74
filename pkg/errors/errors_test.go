package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "invalid x coordinate: %v", 500.0)
	if !strings.Contains(err.Error(), "INVALID_CONFIG") {
		t.Errorf("Error() = %q, want code prefix", err.Error())
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("Error() = %q, want formatted args", err.Error())
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrCodeOracleUnavailable, cause, "dial ws://localhost:7777")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if !Is(err, ErrCodeOracleUnavailable) {
		t.Error("Is should match the wrapping code")
	}
	if Is(err, ErrCodeInvalidConfig) {
		t.Error("Is should not match a different code")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeRunNotFound, "no such run")); got != ErrCodeRunNotFound {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeRunNotFound)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidAction, "charge frames must be non-negative, got -1")
	if msg := UserMessage(err); strings.Contains(msg, "INVALID_ACTION") {
		t.Errorf("UserMessage should strip the code prefix, got %q", msg)
	}
}

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		wantErr bool
	}{
		{"Origin", 0, 0, false},
		{"Center", 230, 298, false},
		{"MaxCorner", 480, 360, false},
		{"XTooLarge", 480.5, 100, true},
		{"XNegative", -1, 100, true},
		{"YTooLarge", 100, 361, true},
		{"YNegative", 100, -0.1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinates(tt.x, tt.y)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCoordinates(%v, %v) error = %v, wantErr %v", tt.x, tt.y, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidConfig) {
				t.Errorf("validation error should carry INVALID_CONFIG, got %v", GetCode(err))
			}
		})
	}
}

func TestValidateLevel(t *testing.T) {
	for _, level := range []int{0, 21, 42} {
		if err := ValidateLevel(level); err != nil {
			t.Errorf("ValidateLevel(%d) = %v, want nil", level, err)
		}
	}
	for _, level := range []int{-1, 43, 100} {
		if err := ValidateLevel(level); err == nil {
			t.Errorf("ValidateLevel(%d) = nil, want error", level)
		}
	}
}

func TestValidateWindPhase(t *testing.T) {
	if err := ValidateWindPhase(0); err != nil {
		t.Errorf("ValidateWindPhase(0) = %v, want nil", err)
	}
	if err := ValidateWindPhase(3.14); err != nil {
		t.Errorf("ValidateWindPhase(3.14) = %v, want nil", err)
	}
	// 2π itself is excluded: the phase wraps back to 0.
	if err := ValidateWindPhase(MaxWindPhase); err == nil {
		t.Error("ValidateWindPhase(2π) = nil, want error")
	}
	if err := ValidateWindPhase(-0.01); err == nil {
		t.Error("ValidateWindPhase(-0.01) = nil, want error")
	}
}

func TestValidateChargeFrames(t *testing.T) {
	if err := ValidateChargeFrames(0); err != nil {
		t.Errorf("ValidateChargeFrames(0) = %v, want nil", err)
	}
	if err := ValidateChargeFrames(-1); err == nil {
		t.Error("ValidateChargeFrames(-1) = nil, want error")
	}
	if err := ValidateChargeFrames(-1); !Is(err, ErrCodeInvalidAction) {
		t.Error("charge validation should carry INVALID_ACTION")
	}
}
