package wire

import (
	"time"

	"github.com/pkg/errors"
)

// Date/time fields travel as counts since an epoch: time_point as
// microseconds, time_point_sec as whole seconds, block timestamps as
// 500 ms slots since 2000-01-01T00:00:00Z. Textual forms are ISO-8601
// with millisecond precision and no zone suffix; inputs are assumed
// UTC.

const blockTimestampEpochMS = 946684800000

const timeFormat = "2006-01-02T15:04:05.000"

var timeParseFormats = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseUTC(s string) (time.Time, error) {
	for _, format := range timeParseFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("wire: invalid date %q", s)
}

func (b *Buffer) WriteTimePoint(s string) error {
	t, err := parseUTC(s)
	if err != nil {
		return err
	}
	us := t.Unix()*1000000 + int64(t.Nanosecond())/1000
	b.WriteUint64(uint64(us))
	return nil
}

func (b *Buffer) ReadTimePoint() (string, error) {
	v, err := b.ReadUint64()
	if err != nil {
		return "", err
	}
	us := int64(v)
	t := time.Unix(us/1000000, us%1000000*1000).UTC()
	return t.Format(timeFormat), nil
}

func (b *Buffer) WriteTimePointSec(s string) error {
	t, err := parseUTC(s)
	if err != nil {
		return err
	}
	b.WriteUint32(uint32(t.Unix()))
	return nil
}

func (b *Buffer) ReadTimePointSec() (string, error) {
	v, err := b.ReadUint32()
	if err != nil {
		return "", err
	}
	return time.Unix(int64(v), 0).UTC().Format(timeFormat), nil
}

func (b *Buffer) WriteBlockTimestamp(s string) error {
	t, err := parseUTC(s)
	if err != nil {
		return err
	}
	ms := t.Unix()*1000 + int64(t.Nanosecond())/1000000
	slot := (ms - blockTimestampEpochMS + 250) / 500
	b.WriteUint32(uint32(slot))
	return nil
}

func (b *Buffer) ReadBlockTimestamp() (string, error) {
	v, err := b.ReadUint32()
	if err != nil {
		return "", err
	}
	ms := int64(v)*500 + blockTimestampEpochMS
	t := time.Unix(ms/1000, ms%1000*1000000).UTC()
	return t.Format(timeFormat), nil
}
