package archipelago

import (
	"regexp"

	"github.com/abdidvp/appatch/internal/domain"
)

const (
	jsonHeader  = "<nlohmann/json.hpp>"
	fixesHeader = `"../dependencies/archipelago_fixes.h"`
)

// IncludeRules returns the include-directive fixes, keyed by path relative to
// IntegrationDir. Order matters within a file: later rules may anchor on the
// output of earlier ones.
func IncludeRules() domain.RuleSet {
	return domain.RuleSet{
		{Target: "core/ap_manager.cpp", Rules: []domain.PatchRule{
			replaceInclude(jsonHeader, fixesHeader),
		}},
		{Target: "core/ap_manager.h", Rules: []domain.PatchRule{
			includeAfter(`"ap_types.h"`, fixesHeader),
		}},
		{Target: "core/ap_protocol.h", Rules: []domain.PatchRule{
			replaceInclude(jsonHeader, fixesHeader),
		}},
		{Target: "core/ap_protocol.cpp", Rules: []domain.PatchRule{
			includeAfter(`"ap_protocol.h"`, fixesHeader),
		}},
		{Target: "core/ap_network.cpp", Rules: []domain.PatchRule{
			replaceInclude(`"apclient.hpp"`, `"../dependencies/apclient.hpp"`),
			replaceInclude(`"apuuid.hpp"`, `"../dependencies/apuuid.hpp"`),
			replaceInclude(jsonHeader, fixesHeader),
			includeAfter(`"ap_network.h"`, "<chrono>"),
			includeAfter("<chrono>", "<tuple>"),
		}},
		{Target: "core/ap_network.h", Rules: []domain.PatchRule{
			{
				Pattern:     regexp.MustCompile(`(?m)^(// Forward declaration of APClient)`),
				Replacement: "#include " + fixesHeader + "\n\n${1}",
				AppliedWhen: domain.IncludeLine(fixesHeader),
			},
		}},
		{Target: "core/ap_state.cpp", Rules: []domain.PatchRule{
			replaceInclude(jsonHeader, fixesHeader),
		}},
		{Target: "ui/ap_overlay.cpp", Rules: []domain.PatchRule{
			{
				Pattern:     regexp.MustCompile(`common/2d/v_text\.h`),
				Replacement: "common/fonts/v_text.h",
				AppliedWhen: regexp.MustCompile(`common/fonts/v_text\.h`),
			},
		}},
		{Target: "ui/ap_overlay.h", Rules: []domain.PatchRule{
			includeAfter(`"../core/ap_types.h"`, "<vector>"),
		}},
	}
}

// replaceInclude swaps one #include line for another.
func replaceInclude(from, to string) domain.PatchRule {
	return domain.PatchRule{
		Pattern:     domain.IncludeLine(from),
		Replacement: "#include " + to,
		AppliedWhen: domain.IncludeLine(to),
	}
}

// includeAfter adds an #include line directly below an existing one.
func includeAfter(anchor, added string) domain.PatchRule {
	return domain.PatchRule{
		Pattern:     regexp.MustCompile(`(?m)^([ \t]*#include[ \t]*` + regexp.QuoteMeta(anchor) + `)[ \t]*$`),
		Replacement: "${1}\n#include " + added,
		AppliedWhen: domain.IncludeLine(added),
	}
}
