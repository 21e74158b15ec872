// Package singleton enforces at most one live instance per decorated
// constructor.
//
// States: UNINITIALIZED until the first successful Construct, INITIALIZED
// afterwards. Only Reset (lenient mode) returns to UNINITIALIZED.
//
//	config := singleton.New[Config](construct.NewClass(loadConfig))
//	a, _ := config.Construct("prod.yaml")
//	b, _ := config.Construct("dev.yaml") // a, "dev.yaml" ignored
//
//	strict := singleton.New[Pool](pools, singleton.WithStrict(true))
//	_, err := strict.Construct()
//	_, err = strict.Construct() // errors.Is(err, singleton.ErrAlreadyConstructed)
//
// The instance slot is plain state without synchronization.
package singleton
