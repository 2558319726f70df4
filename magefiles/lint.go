//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Lint mg.Namespace

// Runs go vet on both build variants.
func (Lint) Vet() error {
	if _, err := executeCmd("go", withArgs("vet", "./..."), withStream()); err != nil {
		return err
	}
	_, err := executeCmd("go", withArgs("vet", "-tags", debugTag, "./..."), withStream())
	return err
}
