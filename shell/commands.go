package shell

import (
	"strconv"
	"strings"

	"github.com/brettbedarf/inodefs"
	"github.com/pkg/errors"
)

// exit status for `exit` with a non-numeric argument
const badExitStatus = 127

func cmdCat(sh *Shell, args []string) error {
	if len(args) == 0 {
		return usage("cat pathname...")
	}
	for _, arg := range args {
		words, err := sh.fs.ReadFile(inodefs.ParsePath(arg))
		if err != nil {
			return err
		}
		sh.printf("%s\n", strings.Join(words, " "))
	}
	return nil
}

func cmdCd(sh *Shell, args []string) error {
	switch len(args) {
	case 0:
		return sh.fs.ChangeDirectory(inodefs.Abs())
	case 1:
		return sh.fs.ChangeDirectory(inodefs.ParsePath(args[0]))
	default:
		return usage("cd [pathname]")
	}
}

func cmdEcho(sh *Shell, args []string) error {
	sh.printf("%s\n", strings.Join(args, " "))
	return nil
}

func cmdExit(sh *Shell, args []string) error {
	if len(args) > 1 {
		return usage("exit [status]")
	}
	if len(args) == 1 {
		status, err := strconv.Atoi(args[0])
		if err != nil {
			status = badExitStatus
		}
		sh.status = status
	}
	sh.exited = true
	return nil
}

func cmdLs(sh *Shell, args []string) error {
	if len(args) == 0 {
		args = []string{"."}
	}
	for _, arg := range args {
		listing, err := sh.fs.ListDirectory(inodefs.ParsePath(arg))
		if err != nil {
			return err
		}
		sh.printListing(listing)
	}
	return nil
}

func cmdLsr(sh *Shell, args []string) error {
	if len(args) == 0 {
		args = []string{"."}
	}
	for _, arg := range args {
		listings, err := sh.fs.ListRecursive(inodefs.ParsePath(arg))
		if err != nil {
			return err
		}
		for _, l := range listings {
			sh.printListing(l)
		}
	}
	return nil
}

// printListing writes a directory header followed by one line per entry:
// node id, size and name, with "/" after the names of subdirectories
func (sh *Shell) printListing(l inodefs.Listing) {
	sh.printf("%s:\n", l.Path)
	for _, e := range l.Entries {
		name := e.Name
		if e.Node.Type() == inodefs.DirectoryType && name != "." && name != ".." {
			name = sh.dirColor.Sprint(name + inodefs.Separator)
		}
		sh.printf("%6d  %6d  %s\n", e.Node.ID(), e.Node.Size(), name)
	}
}

func cmdMake(sh *Shell, args []string) error {
	if len(args) == 0 {
		return usage("make pathname [words...]")
	}
	content := append([]string{}, args[1:]...)
	_, err := sh.fs.CreateFile(inodefs.ParsePath(args[0]), content)
	return err
}

func cmdMkdir(sh *Shell, args []string) error {
	if len(args) != 1 {
		return usage("mkdir pathname")
	}
	_, err := sh.fs.MakeDirectory(inodefs.ParsePath(args[0]))
	return err
}

func cmdPrompt(sh *Shell, args []string) error {
	if len(args) == 0 {
		return usage("prompt string")
	}
	sh.fs.SetPrompt(strings.Join(args, " ") + " ")
	return nil
}

func cmdPwd(sh *Shell, args []string) error {
	if len(args) != 0 {
		return usage("pwd")
	}
	path, err := sh.fs.PathOf(sh.fs.Cwd())
	if err != nil {
		return errors.WithStack(err)
	}
	sh.printf("%s\n", path)
	return nil
}

func cmdRm(sh *Shell, args []string) error {
	if len(args) != 1 {
		return usage("rm pathname")
	}
	return sh.fs.Remove(inodefs.ParsePath(args[0]))
}

func cmdRmr(sh *Shell, args []string) error {
	if len(args) != 1 {
		return usage("rmr pathname")
	}
	return sh.fs.RemoveAll(inodefs.ParsePath(args[0]))
}
