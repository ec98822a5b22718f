// Copyright 2026 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package testing

import (
	"go/build"
	"os"
	"path/filepath"
	"sort"
	"strings"

	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"
)

// ModulePath is the import path of this module.
const ModulePath = "github.com/juju/jwm"

// FindModuleImports returns a sorted list of the module's packages
// imported, directly or indirectly, by packageName. The module path
// prefix is removed, leaving just the short names; the root package
// is reported as "jwm".
func FindModuleImports(c *gc.C, packageName string) []string {
	root := moduleRoot(c)
	allpkgs := make(map[string]bool)
	findModuleImports(c, root, packageName, allpkgs)

	var result []string
	for name := range allpkgs {
		result = append(result, shortName(name))
	}
	sort.Strings(result)
	return result
}

func shortName(name string) string {
	if name == ModulePath {
		return "jwm"
	}
	return strings.TrimPrefix(name, ModulePath+"/")
}

func inModule(name string) bool {
	return name == ModulePath || strings.HasPrefix(name, ModulePath+"/")
}

// findModuleImports recursively adds all module packages imported by
// packageName to allpkgs.
func findModuleImports(c *gc.C, root, packageName string, allpkgs map[string]bool) {
	dir := root
	if packageName != ModulePath {
		dir = filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(packageName, ModulePath+"/")))
	}
	pkg, err := build.ImportDir(dir, 0)
	c.Assert(err, jc.ErrorIsNil)

	for _, name := range pkg.Imports {
		if !inModule(name) || allpkgs[name] {
			continue
		}
		allpkgs[name] = true
		findModuleImports(c, root, name, allpkgs)
	}
}

// moduleRoot walks up from the working directory to the directory
// holding go.mod.
func moduleRoot(c *gc.C) string {
	dir, err := os.Getwd()
	c.Assert(err, jc.ErrorIsNil)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			c.Fatalf("go.mod not found")
		}
		dir = parent
	}
}
