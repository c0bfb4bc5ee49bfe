package archipelago

import (
	"regexp"

	"github.com/abdidvp/appatch/internal/domain"
)

const (
	namespaceDefine = "NLOHMANN_JSON_NAMESPACE_NO_VERSION"
	networkImplSrc  = "archipelago/core/ap_network_impl.cpp"
	managerImplSrc  = "archipelago/core/ap_manager_impl.cpp"
)

// BuildFileInsertions returns the CMakeLists.txt edits in application order.
func BuildFileInsertions() []domain.Insertion {
	return []domain.Insertion{
		{
			Anchor: regexp.MustCompile(`add_definitions\(-DASIO_STANDALONE=1\)`),
			Text: "\n    \n    # FIX: Disable JSON versioned namespace to avoid conflicts\n" +
				"    add_definitions(-D" + namespaceDefine + "=1)",
			Present: []string{namespaceDefine},
		},
		{
			Anchor:  regexp.MustCompile(`archipelago/core/ap_state\.cpp`),
			Text:    "\n        " + networkImplSrc + "\n        " + managerImplSrc,
			Present: []string{networkImplSrc, managerImplSrc},
		},
	}
}
