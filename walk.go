// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jxml

// A Handler receives structural events from Walk. If a method reports an
// error, the walk stops and that error is returned to the caller.
type Handler interface {
	// Begin a new object.
	BeginObject() error

	// End the most-recently-opened object.
	EndObject() error

	// Begin a new array.
	BeginArray() error

	// End the most-recently-opened array.
	EndArray() error

	// Report the key of an object member. The key has been decoded.
	Key(text string) error

	// Report a scalar value. The token records the type of the value; string
	// values have been decoded.
	Value(tok Token, text string) error

	// EndOfInput reports the end of the event sequence.
	EndOfInput()
}

// Walk drains src, delivering each event to the corresponding method of h,
// until the sequence ends, the source fails, or a handler method reports an
// error. At a normal end of the sequence it calls h.EndOfInput and returns
// nil.
func Walk(src EventSource, h Handler) error {
	for src.Next() {
		evt := src.Event()
		var err error
		switch evt.Kind {
		case BeginObject:
			err = h.BeginObject()
		case EndObject:
			err = h.EndObject()
		case BeginArray:
			err = h.BeginArray()
		case EndArray:
			err = h.EndArray()
		case Key:
			err = h.Key(evt.Text)
		case Value:
			err = h.Value(evt.Token, evt.Text)
		}
		if err != nil {
			return err
		}
	}
	if err := src.Err(); err != nil {
		return err
	}
	h.EndOfInput()
	return nil
}
