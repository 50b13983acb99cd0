package shell

type BuiltinCommand = string

const (
	CatCommand    BuiltinCommand = "cat"
	CdCommand     BuiltinCommand = "cd"
	EchoCommand   BuiltinCommand = "echo"
	ExitCommand   BuiltinCommand = "exit"
	LsCommand     BuiltinCommand = "ls"
	LsrCommand    BuiltinCommand = "lsr"
	MakeCommand   BuiltinCommand = "make"
	MkdirCommand  BuiltinCommand = "mkdir"
	PromptCommand BuiltinCommand = "prompt"
	PwdCommand    BuiltinCommand = "pwd"
	RmCommand     BuiltinCommand = "rm"
	RmrCommand    BuiltinCommand = "rmr"
)

var builtins = map[BuiltinCommand]CommandFunc{
	CatCommand:    cmdCat,
	CdCommand:     cmdCd,
	EchoCommand:   cmdEcho,
	ExitCommand:   cmdExit,
	LsCommand:     cmdLs,
	LsrCommand:    cmdLsr,
	MakeCommand:   cmdMake,
	MkdirCommand:  cmdMkdir,
	PromptCommand: cmdPrompt,
	PwdCommand:    cmdPwd,
	RmCommand:     cmdRm,
	RmrCommand:    cmdRmr,
}

// RegisterBuiltins registers all built-in commands by default
// or only the specific ones if names are provided. Unknown names are ignored.
func RegisterBuiltins(r *Registry, names ...BuiltinCommand) {
	if len(names) == 0 {
		for name, fn := range builtins {
			r.Register(name, fn)
		}
		return
	}

	for _, name := range names {
		if fn, ok := builtins[name]; ok {
			r.Register(name, fn)
		}
	}
}
