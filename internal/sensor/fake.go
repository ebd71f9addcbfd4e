package sensor

// FakeReader is a test double that returns scripted sensor values.
type FakeReader struct {
	// Samples contains scripted values. ReadDigital and ReadAnalog each
	// consume from their own cursor so the analog side can be read less
	// often than the digital side.
	Samples []Sample

	digitalIndex int
	analogIndex  int

	// AnalogReads counts calls to ReadAnalog
	AnalogReads int

	// Closed tracks if Close was called
	Closed bool
}

// Sample represents a single sensor reading (already in logical form).
type Sample struct {
	Magnet bool // true = magnet detected
	Field  int  // 0-4095
}

// NewFakeReader creates a FakeReader with the given samples.
func NewFakeReader(samples []Sample) *FakeReader {
	return &FakeReader{Samples: samples}
}

// ReadDigital returns the next scripted digital value.
// If samples are exhausted, returns the last sample repeatedly.
// With no samples configured it returns the neutral value.
func (f *FakeReader) ReadDigital() bool {
	if len(f.Samples) == 0 {
		return false
	}
	s := f.Samples[f.digitalIndex]
	if f.digitalIndex < len(f.Samples)-1 {
		f.digitalIndex++
	}
	return s.Magnet
}

// ReadAnalog returns the next scripted analog value.
// If samples are exhausted, returns the last sample repeatedly.
func (f *FakeReader) ReadAnalog() int {
	f.AnalogReads++
	if len(f.Samples) == 0 {
		return 0
	}
	s := f.Samples[f.analogIndex]
	if f.analogIndex < len(f.Samples)-1 {
		f.analogIndex++
	}
	return s.Field
}

// Close marks the reader as closed.
func (f *FakeReader) Close() error {
	f.Closed = true
	return nil
}

// Reset resets the reader to the beginning of samples.
func (f *FakeReader) Reset() {
	f.digitalIndex = 0
	f.analogIndex = 0
	f.AnalogReads = 0
	f.Closed = false
}
