package model

const TimestampFormat = "2006-01-02T15:04:05.000Z"
