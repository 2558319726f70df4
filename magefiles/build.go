//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Runs go mod tidy and then verifies the module dependencies.
func (Build) Tidy() error {
	return goTidy()
}

// Builds every package with the debug printing of vectors and matrices compiled in.
func (Build) Debug() error {
	if _, err := executeCmd("go", withArgs("build", "-tags", debugTag, "./..."), withStream()); err != nil {
		return err
	}
	return nil
}
