package spring

// Listener receives the state transitions of a Spring. Listeners are
// compared by identity when removed, so implement it on a pointer type.
type Listener interface {
	// OnSpringActivate is called when the spring leaves rest.
	OnSpringActivate(s *Spring)
	// OnSpringUpdate is called after every advance and whenever the
	// current value is set.
	OnSpringUpdate(s *Spring)
	// OnSpringAtRest is called once when the spring settles.
	OnSpringAtRest(s *Spring)
	// OnSpringEndStateChange is called when the end value changes.
	OnSpringEndStateChange(s *Spring)
}

// ListenerFuncs adapts plain functions to a Listener. Nil fields are
// skipped.
type ListenerFuncs struct {
	Activate       func(*Spring)
	Update         func(*Spring)
	AtRest         func(*Spring)
	EndStateChange func(*Spring)
}

func (f *ListenerFuncs) OnSpringActivate(s *Spring) {
	if f.Activate != nil {
		f.Activate(s)
	}
}

func (f *ListenerFuncs) OnSpringUpdate(s *Spring) {
	if f.Update != nil {
		f.Update(s)
	}
}

func (f *ListenerFuncs) OnSpringAtRest(s *Spring) {
	if f.AtRest != nil {
		f.AtRest(s)
	}
}

func (f *ListenerFuncs) OnSpringEndStateChange(s *Spring) {
	if f.EndStateChange != nil {
		f.EndStateChange(s)
	}
}

// SystemListener is notified around every integration pass of a System.
type SystemListener interface {
	BeforeIntegrate(sys *System)
	AfterIntegrate(sys *System)
}

// SystemListenerFuncs adapts plain functions to a SystemListener.
type SystemListenerFuncs struct {
	Before func(*System)
	After  func(*System)
}

func (f *SystemListenerFuncs) BeforeIntegrate(sys *System) {
	if f.Before != nil {
		f.Before(sys)
	}
}

func (f *SystemListenerFuncs) AfterIntegrate(sys *System) {
	if f.After != nil {
		f.After(sys)
	}
}
