package search

import (
	"fmt"
	"sort"
	"sync"

	"rds-pfd/partial_fd/model"
)

// Dependency 发现的一条依赖 lhs→rhs
type Dependency struct {
	Lhs   model.Vertical
	Rhs   *model.Column
	Error float64
	Score float64
}

func (d Dependency) String() string {
	return fmt.Sprintf("%s→%s", d.Lhs, d.Rhs)
}

// ResultCollector 收集所有rhs协程发现的依赖
type ResultCollector struct {
	mu           sync.Mutex
	dependencies []Dependency
}

func NewResultCollector() *ResultCollector {
	return &ResultCollector{}
}

func (c *ResultCollector) RegisterFd(lhs model.Vertical, rhs *model.Column, g1 float64, score float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dependencies = append(c.dependencies, Dependency{Lhs: lhs, Rhs: rhs, Error: g1, Score: score})
}

func (c *ResultCollector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.dependencies)
}

// Dependencies 按rhs列号、lhs列数、lhs列名排序
func (c *ResultCollector) Dependencies() []Dependency {
	c.mu.Lock()
	dependencies := make([]Dependency, len(c.dependencies))
	copy(dependencies, c.dependencies)
	c.mu.Unlock()

	sort.Slice(dependencies, func(i, j int) bool {
		a, b := dependencies[i], dependencies[j]
		if a.Rhs.Index() != b.Rhs.Index() {
			return a.Rhs.Index() < b.Rhs.Index()
		}
		if a.Lhs.Arity() != b.Lhs.Arity() {
			return a.Lhs.Arity() < b.Lhs.Arity()
		}
		return a.Lhs.String() < b.Lhs.String()
	})
	return dependencies
}
