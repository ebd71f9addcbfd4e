package screen

// FakeSurface records render calls for test assertions.
type FakeSurface struct {
	// Calls lists every call in order, e.g. "static", "digital:NO MAGNET".
	Calls []string

	// Digital and Analog hold the text currently shown in each region.
	Digital string
	Analog  string

	// RenderError, if set, is returned by the region renders.
	RenderError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakeSurface creates a FakeSurface.
func NewFakeSurface() *FakeSurface {
	return &FakeSurface{}
}

// RenderStaticLayout records the call.
func (f *FakeSurface) RenderStaticLayout() error {
	f.Calls = append(f.Calls, "static")
	return nil
}

// RenderDigitalRegion records the call.
func (f *FakeSurface) RenderDigitalRegion(text string) error {
	f.Calls = append(f.Calls, "digital:"+text)
	if f.RenderError != nil {
		return f.RenderError
	}
	f.Digital = text
	return nil
}

// RenderAnalogRegion records the call.
func (f *FakeSurface) RenderAnalogRegion(text string) error {
	f.Calls = append(f.Calls, "analog:"+text)
	if f.RenderError != nil {
		return f.RenderError
	}
	f.Analog = text
	return nil
}

// Close marks the surface as closed.
func (f *FakeSurface) Close() error {
	f.Closed = true
	return nil
}

// Reset clears recorded calls.
func (f *FakeSurface) Reset() {
	f.Calls = nil
	f.Digital = ""
	f.Analog = ""
	f.RenderError = nil
	f.Closed = false
}
