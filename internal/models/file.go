package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	TypeFolder = "folder"
	TypeFile   = "file"
	TypeImage  = "image"
)

// RootFolderID is the stored form of the root sentinel. Clients send and
// receive it as the integer 0; it is normalized to this string at the
// repository boundary so it can never collide with a generated ObjectID.
const RootFolderID = "0"

// File is a node in the tree. ParentID is either RootFolderID or the hex id
// of a folder record. LocalPath is set only for file/image types and stays
// internal; it never appears in a response.
type File struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId"`
	Name      string             `bson:"name"`
	Type      string             `bson:"type"`
	IsPublic  bool               `bson:"isPublic"`
	ParentID  string             `bson:"parentId"`
	LocalPath string             `bson:"localPath,omitempty"`
}

// ValidType reports whether t is one of the accepted file types.
func ValidType(t string) bool {
	return t == TypeFolder || t == TypeFile || t == TypeImage
}

// FileView is the client representation of a File. ParentID is the integer
// 0 at the root and a hex string everywhere else, matching the wire format
// of the record at creation time.
type FileView struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	IsPublic bool   `json:"isPublic"`
	ParentID any    `json:"parentId"`
}

// View projects a File into its client representation.
func (f *File) View() FileView {
	return FileView{
		ID:       f.ID.Hex(),
		UserID:   f.UserID.Hex(),
		Name:     f.Name,
		Type:     f.Type,
		IsPublic: f.IsPublic,
		ParentID: PublicParentID(f.ParentID),
	}
}

// PublicParentID converts a stored parent id to its wire form.
func PublicParentID(parentID string) any {
	if parentID == RootFolderID || parentID == "" {
		return 0
	}
	return parentID
}
