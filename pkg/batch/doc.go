// Package batch evaluates files of path operations.
//
// A batch file is YAML or JSON:
//
//	manipulation: windows
//	operations:
//	  - name: home
//	    op: resolve
//	    paths: ["C:/Users", "me"]
//	  - op: relative
//	    paths: ["C:/a/b", "C:/a/c"]
//	  - op: is_absolute
//	    paths: ["/tmp"]
//	    manipulation: default
//
// Operations are evaluated concurrently; results keep the input order. An
// operation that fails (for example a relative path given to "relative")
// records its error in its [Result] without stopping the others.
package batch
