package message

import "time"

const TimeFormatString = time.DateTime

type TimeStamp string

func NewTimeStamp(t time.Time) TimeStamp {
	return TimeStamp(t.Format(TimeFormatString))
}
