package mocks

import (
	"github.com/brettbedarf/inodefs"
	"github.com/stretchr/testify/mock"
)

// MockFileSystem implements inodefs.FileSystemOperator for testing across packages
type MockFileSystem struct {
	mock.Mock
}

var _ inodefs.FileSystemOperator = (*MockFileSystem)(nil)

// nodeArg returns args.Get(i) as a NodeInfo, handling nil returns
func nodeArg(args mock.Arguments, i int) inodefs.NodeInfo {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).(inodefs.NodeInfo)
}

func (m *MockFileSystem) Root() inodefs.NodeInfo {
	return nodeArg(m.Called(), 0)
}

func (m *MockFileSystem) Cwd() inodefs.NodeInfo {
	return nodeArg(m.Called(), 0)
}

func (m *MockFileSystem) Resolve(p inodefs.Path) (inodefs.NodeInfo, error) {
	args := m.Called(p)
	return nodeArg(args, 0), args.Error(1)
}

func (m *MockFileSystem) ChangeDirectory(p inodefs.Path) error {
	return m.Called(p).Error(0)
}

func (m *MockFileSystem) List(p inodefs.Path) ([]inodefs.Entry, error) {
	args := m.Called(p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inodefs.Entry), args.Error(1)
}

func (m *MockFileSystem) ListDirectory(p inodefs.Path) (inodefs.Listing, error) {
	args := m.Called(p)
	return args.Get(0).(inodefs.Listing), args.Error(1)
}

func (m *MockFileSystem) ListRecursive(p inodefs.Path) ([]inodefs.Listing, error) {
	args := m.Called(p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inodefs.Listing), args.Error(1)
}

func (m *MockFileSystem) CreateFile(p inodefs.Path, content []string) (inodefs.NodeInfo, error) {
	args := m.Called(p, content)
	return nodeArg(args, 0), args.Error(1)
}

func (m *MockFileSystem) WriteFile(p inodefs.Path, content []string) error {
	return m.Called(p, content).Error(0)
}

func (m *MockFileSystem) ReadFile(p inodefs.Path) ([]string, error) {
	args := m.Called(p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFileSystem) MakeDirectory(p inodefs.Path) (inodefs.NodeInfo, error) {
	args := m.Called(p)
	return nodeArg(args, 0), args.Error(1)
}

func (m *MockFileSystem) MakeDirectoryAll(p inodefs.Path) (inodefs.NodeInfo, error) {
	args := m.Called(p)
	return nodeArg(args, 0), args.Error(1)
}

func (m *MockFileSystem) Remove(p inodefs.Path) error {
	return m.Called(p).Error(0)
}

func (m *MockFileSystem) RemoveAll(p inodefs.Path) error {
	return m.Called(p).Error(0)
}

func (m *MockFileSystem) PathOf(n inodefs.NodeInfo) (string, error) {
	args := m.Called(n)
	return args.String(0), args.Error(1)
}

func (m *MockFileSystem) Prompt() string {
	return m.Called().String(0)
}

func (m *MockFileSystem) SetPrompt(prompt string) {
	m.Called(prompt)
}

// MockNode implements inodefs.NodeInfo for testing across packages
type MockNode struct {
	mock.Mock
}

var _ inodefs.NodeInfo = (*MockNode)(nil)

func (m *MockNode) ID() uint64 {
	return m.Called().Get(0).(uint64)
}

func (m *MockNode) Type() inodefs.NodeType {
	return m.Called().Get(0).(inodefs.NodeType)
}

func (m *MockNode) Size() int {
	return m.Called().Int(0)
}

func (m *MockNode) Entries() ([]inodefs.Entry, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inodefs.Entry), args.Error(1)
}
