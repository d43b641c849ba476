package domain

// Role is the authorization level of a staff account.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleLibrarian Role = "librarian"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleLibrarian:
		return true
	}
	return false
}

// Capability checks. All mutating operations consult these instead of
// comparing role strings at call sites.

// CanManageBooks reports whether the role may create and edit books.
func (r Role) CanManageBooks() bool { return r == RoleAdmin || r == RoleLibrarian }

// CanDeleteBooks reports whether the role may delete books.
func (r Role) CanDeleteBooks() bool { return r == RoleAdmin }

// CanManageMembers reports whether the role may create and edit members.
func (r Role) CanManageMembers() bool { return r == RoleAdmin || r == RoleLibrarian }

// CanDeleteMembers reports whether the role may delete members.
func (r Role) CanDeleteMembers() bool { return r == RoleAdmin }

// CanManageGenres reports whether the role may create, edit, or delete genres.
func (r Role) CanManageGenres() bool { return r == RoleAdmin }

// CanManageStaff reports whether the role may create, edit, or delete staff accounts.
func (r Role) CanManageStaff() bool { return r == RoleAdmin }

// CanBorrow reports whether the role may record borrows and returns.
func (r Role) CanBorrow() bool { return r == RoleAdmin || r == RoleLibrarian }

// CanDeleteRecords reports whether the role may delete borrow records.
func (r Role) CanDeleteRecords() bool { return r == RoleAdmin }

// CanViewReports reports whether the role may read circulation reports.
func (r Role) CanViewReports() bool { return r == RoleAdmin }
