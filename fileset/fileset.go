package fileset

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

type FileSet []File

func (fi FileSet) Root() string {
	if len(fi) == 0 {
		return "."
	}
	return fi[0].Dir()
}

func (fi FileSet) Filter(pathRegex string) (out FileSet, err error) {
	path, err := regexp.Compile(pathRegex)
	if err != nil {
		return nil, fmt.Errorf("pattern: %w", err)
	}
	for _, v := range fi {
		if !path.MatchString(v.Relative) {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

type File struct {
	fs.DirEntry
	Absolute string
	Relative string
}

func (fi File) Dir() string {
	return path.Dir(fi.Absolute)
}

func (fi File) Open() (*os.File, error) {
	return os.Open(fi.Absolute)
}

// Words calls visit for every word in the file. A word is a run of letters
// or digits; everything else separates words.
func (fi File) Words(lower bool, visit func(word string)) error {
	f, err := fi.Open()
	if err != nil {
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if lower {
			line = strings.ToLower(line)
		}
		for _, word := range strings.FieldsFunc(line, isSeparator) {
			visit(word)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%s: %w", fi.Relative, err)
	}
	return nil
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func RecursiveChildren(dir string) (found FileSet, err error) {
	dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("abs: %w", err)
	}
	queue, err := ReadDir(dir)
	if err != nil {
		return nil, err
	}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if !current.IsDir() {
			current.Relative = strings.TrimPrefix(current.Absolute, dir+string(filepath.Separator))
			found = append(found, current)
			continue
		}
		if current.Name() == "vendor" || strings.HasPrefix(current.Name(), ".") {
			continue
		}
		children, err := ReadDir(current.Absolute)
		if err != nil {
			return nil, err
		}
		queue = append(queue, children...)
	}
	return found, nil
}

func ReadDir(dir string) (queue []File, err error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()
	dirs, err := f.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	for _, v := range dirs {
		absolute, err := filepath.Abs(path.Join(dir, v.Name()))
		if err != nil {
			return nil, fmt.Errorf("abs: %w", err)
		}
		queue = append(queue, File{v, absolute, ""})
	}
	return
}
