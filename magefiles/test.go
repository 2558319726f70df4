//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs the unit tests of every package.
func (Test) Unit() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./..."), withStream())
	return err
}

// Runs the unit tests with debug printing enabled.
func (Test) Debug() error {
	_, err := executeCmd("go", withArgs("test", "-tags", debugTag, "./..."), withStream())
	return err
}

// Runs the vector and matrix benchmarks.
func (Test) Bench() error {
	mg.Deps(Test.Unit)
	_, err := executeCmd("go", withArgs("test", "-run", "^$", "-bench", ".", "-benchmem"), withDir("engine/math"), withStream())
	return err
}
