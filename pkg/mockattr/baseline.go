// Package mockattr separates the members a test author added to a mock from
// the members every mock carries because of the mocking library.
package mockattr

import "sort"

// Archetype is a family of mock objects and the members it always exposes
type Archetype struct {
	Name    string
	Members []string
}

// Members of a type that embeds testify's mock.Mock.
var generalMock = Archetype{
	Name: "general",
	Members: []string{
		"Mock",
		"ExpectedCalls",
		"Calls",
		"On",
		"Called",
		"MethodCalled",
		"Test",
		"TestData",
		"AssertExpectations",
		"AssertNumberOfCalls",
		"AssertCalled",
		"AssertNotCalled",
		"IsMethodCallable",
	},
}

// Members of generated mocks whose expectation builders return typed calls
// (mockery expecters, gomock recorders).
var expecterMock = Archetype{
	Name: "expecter",
	Members: []string{
		"EXPECT",
		"Call",
		"Return",
		"Run",
		"RunAndReturn",
		"Panic",
		"Once",
		"Twice",
		"Times",
		"Maybe",
		"Unset",
		"NotBefore",
		"After",
		"WaitUntil",
		"AnyTimes",
		"MinTimes",
		"MaxTimes",
		"Do",
		"DoAndReturn",
		"SetArg",
		"Matches",
	},
}

// Bookkeeping members of a mock that is inspected but never invoked.
var nonCallableMock = Archetype{
	Name: "non-callable",
	Members: []string{
		"Mock",
		"ExpectedCalls",
		"Calls",
		"Parent",
		"Method",
		"Arguments",
		"ReturnArguments",
		"Repeatability",
		"WaitFor",
		"RunFn",
		"PanicMsg",
		"String",
	},
}

var archetypes = []Archetype{generalMock, expecterMock, nonCallableMock}

// baseline is built once and only read afterwards
var baseline = func() map[string]struct{} {
	set := make(map[string]struct{})
	for _, a := range archetypes {
		for _, m := range a.Members {
			set[m] = struct{}{}
		}
	}
	return set
}()

// IsBaseline reports whether name is provided by the mocking library
func IsBaseline(name string) bool {
	_, ok := baseline[name]
	return ok
}

// BaselineNames returns the baseline set sorted alphabetically
func BaselineNames() []string {
	names := make([]string, 0, len(baseline))
	for name := range baseline {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Archetypes returns a copy of the mock families the baseline is built from
func Archetypes() []Archetype {
	out := make([]Archetype, len(archetypes))
	for i, a := range archetypes {
		out[i] = Archetype{Name: a.Name, Members: append([]string(nil), a.Members...)}
	}
	return out
}
