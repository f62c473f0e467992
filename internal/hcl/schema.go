package hcl

// fileRoot is the set of top-level blocks accepted in any file.
type fileRoot struct {
	Sources []*sourceBlock `hcl:"source,block"`
	Parts   []*partBlock   `hcl:"part,block"`
}

type sourceBlock struct {
	Name string `hcl:"name,label"`
	Path string `hcl:"path"`
}

type partBlock struct {
	Name   string `hcl:"name,label"`
	Digits int    `hcl:"digits"`
}

// evalVars is exposed to expressions as the `var` object.
type evalVars struct {
	DataDir  string `cty:"data_dir"`
	Day      int    `cty:"day"`
	Capacity int    `cty:"capacity"`
}
