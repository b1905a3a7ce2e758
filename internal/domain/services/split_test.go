package services

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ochairo/droidspec/internal/domain/entities"
)

func TestSplitService_Resolve(t *testing.T) {
	tests := []struct {
		name    string
		policy  entities.AbiSplitPolicy
		want    []string
		wantErr error
	}{
		{
			name: "reset then include",
			policy: entities.AbiSplitPolicy{
				Enabled: true,
				Reset:   true,
				Include: []string{"armeabi-v7a", "arm64-v8a", "x86_64"},
			},
			want: []string{"armeabi-v7a", "arm64-v8a", "x86_64"},
		},
		{
			name:   "no reset keeps every known abi",
			policy: entities.AbiSplitPolicy{Enabled: true, Include: []string{"x86_64"}},
			want:   []string{"armeabi-v7a", "arm64-v8a", "x86", "x86_64"},
		},
		{
			name: "duplicates collapse",
			policy: entities.AbiSplitPolicy{
				Enabled: true,
				Reset:   true,
				Include: []string{"arm64-v8a", "arm64-v8a", "x86_64"},
			},
			want: []string{"arm64-v8a", "x86_64"},
		},
		{
			name:   "disabled",
			policy: entities.AbiSplitPolicy{Enabled: false, Reset: true, Include: []string{"x86"}},
			want:   nil,
		},
		{
			name:    "enabled with empty set",
			policy:  entities.AbiSplitPolicy{Enabled: true, Reset: true},
			wantErr: ErrEmptyAbiSet,
		},
		{
			name:    "unknown abi",
			policy:  entities.AbiSplitPolicy{Enabled: true, Reset: true, Include: []string{"mips"}},
			wantErr: ErrUnknownAbi,
		},
	}

	service := NewSplitService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.Resolve(tt.policy)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
