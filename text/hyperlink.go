package text

import (
	"github.com/google/uuid"

	"dmltext/dml"
)

// Hyperlinks are the one attribute that never resolves through the cascade:
// a link either sits on the run's own properties or the run has none.

// Hyperlink returns the link bound to the local properties, or nil when the
// run has no local properties or they carry no link. Ancestor scopes are
// never consulted.
func (r *Run) Hyperlink() *dml.Hyperlink {
	props := r.properties(false)
	if props == nil {
		return nil
	}
	return props.Link
}

// CreateHyperlink returns the existing local link, or creates an empty one
// (allocating local properties if needed). The new link gets a relationship
// id from the shape's package context; without one a generated id keeps the
// link addressable until the run is bound to a package.
func (r *Run) CreateHyperlink() *dml.Hyperlink {
	if hl := r.Hyperlink(); hl != nil {
		return hl
	}
	link := &dml.Hyperlink{}
	if r.par != nil {
		if shape := r.par.Shape(); shape != nil {
			if pkg := shape.PackageContext(); pkg != nil {
				link.RelID = pkg.NextRelationshipID()
			}
		}
	}
	if link.RelID == "" {
		link.RelID = "rId-" + uuid.NewString()
	}
	r.properties(true).Link = link
	return link
}

// HyperlinkTarget resolves the link's target: the stored target when
// present, otherwise the relationship lookup through the package context.
func (r *Run) HyperlinkTarget() (string, bool) {
	hl := r.Hyperlink()
	if hl == nil {
		return "", false
	}
	if hl.Target != "" {
		return hl.Target, true
	}
	if r.par != nil {
		if shape := r.par.Shape(); shape != nil {
			if pkg := shape.PackageContext(); pkg != nil {
				return pkg.HyperlinkTarget(hl.RelID)
			}
		}
	}
	return "", false
}
