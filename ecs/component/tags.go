package component

type KeyboardControl struct{}

var KeyboardControlComponent = NewComponent[KeyboardControl]()

type PrisonerTag struct{}

var PrisonerTagComponent = NewComponent[PrisonerTag]()

type WardenTag struct{}

var WardenTagComponent = NewComponent[WardenTag]()

type ExitTag struct{}

var ExitTagComponent = NewComponent[ExitTag]()

// Escaping marks a prisoner currently walking towards an exit.
type Escaping struct{}

var EscapingComponent = NewComponent[Escaping]()

// Escaped marks a prisoner that reached an exit.
type Escaped struct{}

var EscapedComponent = NewComponent[Escaped]()
