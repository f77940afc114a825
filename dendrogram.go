package heatcluster

import "fmt"

// Link is the drawable geometry of one merge: an inverted-U bracket joining
// two child clusters. Positions are cell units along the leaf axis; heights
// are merge distances.
type Link struct {
	// Left and Right are the children's centers along the leaf axis.
	Left, Right float64

	// LeftBase and RightBase are the children's own merge heights, zero when
	// the child is a leaf. The bracket's stems start there.
	LeftBase, RightBase float64

	// Height is the distance this merge happened at: the bridge height.
	Height float64

	// Group is the color group index, -1 when the link sits above the color
	// threshold.
	Group int
}

// Dendrogram holds the leaf ordering and link geometry computed from one
// linkage matrix, ready for drawing in any orientation.
type Dendrogram struct {
	// Leaves is the display order: Leaves[i] is the original item index
	// placed at the i-th position along the leaf axis. Position i spans the
	// unit cell [i, i+1], centered at i+0.5, aligning with the heatmap.
	Leaves []int

	// Links has one entry per linkage row, in linkage order.
	Links []Link

	// ColorThreshold is the height at or below which links are colored by
	// group. Negative values leave every link in the base color.
	ColorThreshold float64

	// MaxHeight is the largest merge height.
	MaxHeight float64

	// Groups counts the distinct below-threshold color groups.
	Groups int
}

// ColorThreshold returns the link coloring threshold that splits a linkage
// into k flat clusters: the midpoint of the two merge heights a k-cluster
// cut passes between. k <= 1 returns -1, a sentinel below every height, so
// all links keep the single base color. For k equal to the item count (every
// item its own cluster) there is no lower merge to average with, so half the
// smallest merge height is used.
func ColorThreshold(link [][4]float64, k int) float64 {
	if k <= 1 {
		return -1
	}
	n := len(link)
	if k > n {
		return 0.5 * link[0][2]
	}
	return 0.5 * (link[n-k][2] + link[n-k+1][2])
}

// NewDendrogram computes leaf order, link geometry and link coloring for a
// linkage matrix over m = len(link)+1 items. The leaf order is a depth-first
// walk from the root visiting each row's left child first, scipy's plain
// dendrogram ordering. Links at or below threshold are grouped by connected
// component; groups are numbered left to right by their leftmost leaf.
// Returns an error when the rows do not form a valid merge tree.
func NewDendrogram(link [][4]float64, threshold float64) (*Dendrogram, error) {
	if len(link) == 0 {
		return nil, fmt.Errorf("heatcluster: empty linkage")
	}
	m := len(link) + 1
	total := 2*m - 1

	// Each cluster may be merged away exactly once, and only after it exists.
	used := make([]bool, total)
	for i, row := range link {
		l, r := int(row[0]), int(row[1])
		if l < 0 || r < 0 || l >= m+i || r >= m+i || l == r {
			return nil, fmt.Errorf("heatcluster: linkage row %d merges invalid clusters (%d, %d)", i, l, r)
		}
		if used[l] || used[r] {
			return nil, fmt.Errorf("heatcluster: linkage row %d reuses an already merged cluster", i)
		}
		used[l], used[r] = true, true
	}

	// Leaf order: depth-first from the root, left child first. The right
	// child is pushed first so the left one pops first.
	leaves := make([]int, 0, m)
	stack := make([]int, 0, m)
	stack = append(stack, total-1)
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node < m {
			leaves = append(leaves, node)
			continue
		}
		row := link[node-m]
		stack = append(stack, int(row[1]), int(row[0]))
	}

	// Geometry: leaves sit at cell centers, merged clusters at the midpoint
	// of their children's centers, at their merge height.
	center := make([]float64, total)
	height := make([]float64, total)
	for i, leaf := range leaves {
		center[leaf] = float64(i) + 0.5
	}

	d := &Dendrogram{
		Leaves:         leaves,
		Links:          make([]Link, len(link)),
		ColorThreshold: threshold,
	}
	for i, row := range link {
		l, r := int(row[0]), int(row[1])
		h := row[2]
		d.Links[i] = Link{
			Left:      center[l],
			LeftBase:  height[l],
			Right:     center[r],
			RightBase: height[r],
			Height:    h,
			Group:     -1,
		}
		node := m + i
		center[node] = 0.5 * (center[l] + center[r])
		height[node] = h
		if h > d.MaxHeight {
			d.MaxHeight = h
		}
	}

	d.colorize(link, threshold)
	return d, nil
}

// colorize assigns color groups to below-threshold links: links connected
// through below-threshold merges share a group, and groups are numbered by
// the display position of their leftmost leaf.
func (d *Dendrogram) colorize(link [][4]float64, threshold float64) {
	m := len(link) + 1

	uf := NewUnionFind(m)
	for i, row := range link {
		if d.Links[i].Height > threshold {
			continue
		}
		node := m + i
		uf.Union(node, int(row[0]))
		uf.Union(node, int(row[1]))
	}

	// Leaves in display order fix the group numbering. Singleton components
	// are unmerged leaves, not groups.
	groupOf := make(map[int]int)
	for _, leaf := range d.Leaves {
		root := uf.Find(leaf)
		if uf.size[root] <= 1 {
			continue
		}
		if _, ok := groupOf[root]; !ok {
			groupOf[root] = len(groupOf)
		}
	}

	for i := range d.Links {
		if d.Links[i].Height <= threshold {
			if g, ok := groupOf[uf.Find(m+i)]; ok {
				d.Links[i].Group = g
			}
		}
	}
	d.Groups = len(groupOf)
}
