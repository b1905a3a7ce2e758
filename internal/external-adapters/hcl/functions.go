package hcl

import (
	"fmt"
	"path"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// DefaultProguardDir is where the Android Gradle plugin extracts its
// bundled rule files, relative to the module build directory
const DefaultProguardDir = "build/intermediates/default_proguard_files/global"

var defaultProguardNames = map[string]bool{
	"proguard-android.txt":          true,
	"proguard-android-optimize.txt": true,
}

// defaultProguardFileFunc resolves the name of a bundled rule file to its
// extracted location
var defaultProguardFileFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "name", Type: cty.String},
	},
	Type: function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		name := args[0].AsString()
		if !defaultProguardNames[name] {
			return cty.NilVal, fmt.Errorf("%q is not a bundled proguard file (use proguard-android.txt or proguard-android-optimize.txt)", name)
		}
		return cty.StringVal(path.Join(DefaultProguardDir, name)), nil
	},
})

func functions() map[string]function.Function {
	return map[string]function.Function{
		"default_proguard_file": defaultProguardFileFunc,
	}
}

func isDefaultProguardFile(p string) bool {
	return strings.HasPrefix(p, DefaultProguardDir+"/")
}
