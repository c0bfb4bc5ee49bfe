// Package archipelago holds the fixed patch table for the Archipelago client
// sources: directory layout, stub files, include fixes and CMake edits.
package archipelago

import (
	"path/filepath"

	"github.com/abdidvp/appatch/internal/domain"
)

// Paths relative to the project root.
const (
	IntegrationDir = "src/archipelago"
	BuildFile      = "src/CMakeLists.txt"
)

// Paths relative to IntegrationDir.
const (
	DependenciesDir  = "dependencies"
	WswrapIncludeDir = "dependencies/wswrap/include"
	CoreDir          = "core"

	FixesHeader  = "dependencies/archipelago_fixes.h"
	WswrapHeader = "dependencies/wswrap/include/wswrap.hpp"
	APClientStub = "dependencies/apclient.hpp"
	APUUIDStub   = "dependencies/apuuid.hpp"
	NetworkImpl  = "core/ap_network_impl.cpp"
	ManagerImpl  = "core/ap_manager_impl.cpp"
)

// Layout resolves the fixed relative paths against a project root.
type Layout struct {
	Root string
}

func NewLayout(root string) Layout { return Layout{Root: root} }

// Integration returns the absolute src/archipelago directory.
func (l Layout) Integration() string {
	return filepath.Join(l.Root, filepath.FromSlash(IntegrationDir))
}

// Path resolves a path relative to the integration directory.
func (l Layout) Path(rel string) string {
	return filepath.Join(l.Integration(), filepath.FromSlash(rel))
}

// BuildFile returns the absolute CMakeLists.txt path.
func (l Layout) BuildFile() string {
	return filepath.Join(l.Root, filepath.FromSlash(BuildFile))
}

// RequiredDirs lists the directories created before any stub is written.
func RequiredDirs() []string {
	return []string{DependenciesDir, WswrapIncludeDir}
}

// DependencyStubs are the headers standing in for the upstream client library.
func DependencyStubs() []domain.StubFileSpec {
	return []domain.StubFileSpec{
		{Path: FixesHeader, Content: fixesHeaderContent, Policy: domain.CreateIfAbsent},
		{Path: WswrapHeader, Content: wswrapContent, Policy: domain.CreateIfAbsent},
		{Path: APClientStub, Content: apclientContent, Policy: domain.CreateIfAbsent},
		{Path: APUUIDStub, Content: apuuidContent, Policy: domain.CreateIfAbsent},
	}
}

// ImplementationStubs supply empty bodies for methods declared but never
// defined by the integration sources.
func ImplementationStubs() []domain.StubFileSpec {
	return []domain.StubFileSpec{
		{Path: NetworkImpl, Content: networkImplContent, Policy: domain.CreateIfAbsent},
		{Path: ManagerImpl, Content: managerImplContent, Policy: domain.CreateIfAbsent},
	}
}

// RequiredFiles is what the verifier expects to exist after a run.
func RequiredFiles() []string {
	return []string{FixesHeader, WswrapHeader, APClientStub, APUUIDStub, NetworkImpl, ManagerImpl}
}
