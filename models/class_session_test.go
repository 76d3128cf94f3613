package models

import "testing"

func TestInSegmentWithSegmentField(t *testing.T) {
	tests := []struct {
		name    string
		session ClassSession
		segment ExamSegment
		want    bool
	}{
		{
			name:    "matching segment",
			session: ClassSession{Segment: SEGMENT_BEFORE_FIRST},
			segment: SEGMENT_BEFORE_FIRST,
			want:    true,
		},
		{
			name:    "non matching segment",
			session: ClassSession{Segment: SEGMENT_BEFORE_FIRST},
			segment: SEGMENT_BETWEEN_FIRST_SECOND,
			want:    false,
		},
		{
			name:    "after second matches itself",
			session: ClassSession{Segment: SEGMENT_AFTER_SECOND},
			segment: SEGMENT_AFTER_SECOND,
			want:    true,
		},
		{
			name:    "segment field wins over flag",
			session: ClassSession{Segment: SEGMENT_AFTER_SECOND, IsBeforeFirstTest: true},
			segment: SEGMENT_BEFORE_FIRST,
			want:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.session.InSegment(tt.segment); got != tt.want {
				t.Errorf("InSegment(%s) = %v, want %v", tt.segment, got, tt.want)
			}
		})
	}
}

func TestInSegmentLegacyFallback(t *testing.T) {
	tests := []struct {
		name    string
		flag    bool
		segment ExamSegment
		want    bool
	}{
		{"before first from flag", true, SEGMENT_BEFORE_FIRST, true},
		{"not before first from flag", false, SEGMENT_BEFORE_FIRST, false},
		{"between from flag", false, SEGMENT_BETWEEN_FIRST_SECOND, true},
		{"not between from flag", true, SEGMENT_BETWEEN_FIRST_SECOND, false},
		{"after second unrecoverable", false, SEGMENT_AFTER_SECOND, false},
		{"after second unrecoverable with flag", true, SEGMENT_AFTER_SECOND, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := ClassSession{IsBeforeFirstTest: tt.flag}
			if got := session.InSegment(tt.segment); got != tt.want {
				t.Errorf("InSegment(%s) = %v, want %v", tt.segment, got, tt.want)
			}
		})
	}
}
