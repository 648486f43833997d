package typechecker

// nativeContext and asValContext are counted, nested context flags:
// rather than threading a context struct
// through every recursive call, the checker carries them as instance
// fields, mirroring the source's use of static flags. Excessive exits
// are no-ops (defensive).

func (c *Checker) nativeContextEnter() { c.nativeDepth++ }

func (c *Checker) nativeContextExit() {
	if c.nativeDepth > 0 {
		c.nativeDepth--
	}
}

func (c *Checker) nativeContextIsActive() bool { return c.nativeDepth > 0 }

func (c *Checker) asValContextEnter() { c.asValDepth++ }

func (c *Checker) asValContextExit() {
	if c.asValDepth > 0 {
		c.asValDepth--
	}
}

func (c *Checker) asValContextIsActive() bool { return c.asValDepth > 0 }

// pointerReturnContext tracks whether a pointer-returning call's result
// is being consumed in a position that legitimizes it outside native
// context: either directly under `as val`, or passed as an argument
// lining up with a pointer-typed parameter (inline pass-through).
func (c *Checker) pointerReturnContextEnter() { c.pointerReturnDepth++ }

func (c *Checker) pointerReturnContextExit() {
	if c.pointerReturnDepth > 0 {
		c.pointerReturnDepth--
	}
}

func (c *Checker) pointerReturnContextIsActive() bool { return c.pointerReturnDepth > 0 }
