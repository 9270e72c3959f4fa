package sparsecs

// RelativeWorld1 returns the World of E after checking that T1 is
// bound to E.
func RelativeWorld1[T1 any, E Identifier](u *Universe) (*World[E], error) {
	if err := checkBinding[T1, E](); err != nil {
		return nil, err
	}
	return WorldOf[E](u), nil
}

// RelativeWorld2 returns the World of E after checking that T1, T2 are
// bound to E.
func RelativeWorld2[T1, T2 any, E Identifier](u *Universe) (*World[E], error) {
	if err := checkBinding[T1, E](); err != nil {
		return nil, err
	}
	if err := checkBinding[T2, E](); err != nil {
		return nil, err
	}
	return WorldOf[E](u), nil
}

// RelativeWorld3 returns the World of E after checking that T1, T2, T3 are
// bound to E.
func RelativeWorld3[T1, T2, T3 any, E Identifier](u *Universe) (*World[E], error) {
	if err := checkBinding[T1, E](); err != nil {
		return nil, err
	}
	if err := checkBinding[T2, E](); err != nil {
		return nil, err
	}
	if err := checkBinding[T3, E](); err != nil {
		return nil, err
	}
	return WorldOf[E](u), nil
}

// RelativeWorld4 returns the World of E after checking that T1, T2, T3, T4 are
// bound to E.
func RelativeWorld4[T1, T2, T3, T4 any, E Identifier](u *Universe) (*World[E], error) {
	if err := checkBinding[T1, E](); err != nil {
		return nil, err
	}
	if err := checkBinding[T2, E](); err != nil {
		return nil, err
	}
	if err := checkBinding[T3, E](); err != nil {
		return nil, err
	}
	if err := checkBinding[T4, E](); err != nil {
		return nil, err
	}
	return WorldOf[E](u), nil
}
