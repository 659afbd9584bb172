package services

import (
	"errors"
	"sort"

	"github.com/google/uuid"
	"github.com/penhub/penhub/db"
	"github.com/penhub/penhub/models"
	"gorm.io/gorm"
)

// In-memory repository fakes backing the service tests.

type fakePostRepo struct {
	nextID uint
	posts  []models.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{nextID: 1}
}

func (f *fakePostRepo) CreatePost(post *models.Post) error {
	post.ID = f.nextID
	f.nextID++
	f.posts = append(f.posts, *post)
	return nil
}

func (f *fakePostRepo) GetPostByID(id uint) (*models.Post, error) {
	for i := range f.posts {
		if f.posts[i].ID == id {
			post := f.posts[i]
			return &post, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePostRepo) UpdatePost(post *models.Post) error {
	for i := range f.posts {
		if f.posts[i].ID == post.ID {
			f.posts[i].Text = post.Text
			f.posts[i].Image = post.Image
			f.posts[i].GroupID = post.GroupID
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakePostRepo) pageOf(filter func(models.Post) bool, page, pageSize int) ([]models.Post, int64, error) {
	var matched []models.Post
	for _, p := range f.posts {
		if filter(p) {
			matched = append(matched, p)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].PubDate.After(matched[j].PubDate)
	})

	total := int64(len(matched))
	_, offset := db.ClampPage(page, pageSize, total)
	end := offset + pageSize
	if offset > len(matched) {
		offset = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (f *fakePostRepo) GetAllPosts(page, pageSize int) ([]models.Post, int64, error) {
	return f.pageOf(func(models.Post) bool { return true }, page, pageSize)
}

func (f *fakePostRepo) GetPostsByGroupID(groupID uint, page, pageSize int) ([]models.Post, int64, error) {
	return f.pageOf(func(p models.Post) bool {
		return p.GroupID != nil && *p.GroupID == groupID
	}, page, pageSize)
}

func (f *fakePostRepo) GetPostsByAuthorID(authorID uint, page, pageSize int) ([]models.Post, int64, error) {
	return f.pageOf(func(p models.Post) bool { return p.AuthorID == authorID }, page, pageSize)
}

func (f *fakePostRepo) GetFollowedPosts(userID uint, page, pageSize int) ([]models.Post, int64, error) {
	panic("fakePostRepo needs a follow repo; use newFakePostRepoWithFollows")
}

func (f *fakePostRepo) CountPostsByAuthorID(authorID uint) (int64, error) {
	var count int64
	for _, p := range f.posts {
		if p.AuthorID == authorID {
			count++
		}
	}
	return count, nil
}

// fakePostRepoWithFollows resolves the followed feed against a follow fake.
type fakePostRepoWithFollows struct {
	*fakePostRepo
	follows *fakeFollowRepo
}

func newFakePostRepoWithFollows(follows *fakeFollowRepo) *fakePostRepoWithFollows {
	return &fakePostRepoWithFollows{fakePostRepo: newFakePostRepo(), follows: follows}
}

func (f *fakePostRepoWithFollows) GetFollowedPosts(userID uint, page, pageSize int) ([]models.Post, int64, error) {
	return f.pageOf(func(p models.Post) bool {
		return f.follows.edges[edge{userID, p.AuthorID}]
	}, page, pageSize)
}

type edge struct {
	user, author uint
}

type fakeFollowRepo struct {
	edges map[edge]bool
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{edges: make(map[edge]bool)}
}

func (f *fakeFollowRepo) CreateFollow(userID, authorID uint) error {
	if userID == authorID {
		return nil
	}
	f.edges[edge{userID, authorID}] = true
	return nil
}

func (f *fakeFollowRepo) DeleteFollow(userID, authorID uint) error {
	delete(f.edges, edge{userID, authorID})
	return nil
}

func (f *fakeFollowRepo) IsFollowing(userID, authorID uint) (bool, error) {
	return f.edges[edge{userID, authorID}], nil
}

func (f *fakeFollowRepo) count() int {
	return len(f.edges)
}

type fakeGroupRepo struct {
	nextID uint
	groups []models.Group
}

func newFakeGroupRepo() *fakeGroupRepo {
	return &fakeGroupRepo{nextID: 1}
}

func (f *fakeGroupRepo) CreateGroup(group *models.Group) error {
	for _, g := range f.groups {
		if g.Slug == group.Slug {
			return errors.New(`ERROR: duplicate key value violates unique constraint "idx_groups_slug" (SQLSTATE 23505)`)
		}
	}
	group.ID = f.nextID
	f.nextID++
	f.groups = append(f.groups, *group)
	return nil
}

func (f *fakeGroupRepo) FindGroupBySlug(slug string) (*models.Group, error) {
	for i := range f.groups {
		if f.groups[i].Slug == slug {
			group := f.groups[i]
			return &group, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeGroupRepo) FindGroupByID(id uint) (*models.Group, error) {
	for i := range f.groups {
		if f.groups[i].ID == id {
			group := f.groups[i]
			return &group, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeGroupRepo) GetAllGroups() ([]models.Group, error) {
	groups := make([]models.Group, len(f.groups))
	copy(groups, f.groups)
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Title < groups[j].Title })
	return groups, nil
}

type fakeCommentRepo struct {
	nextID   uint
	comments []models.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{nextID: 1}
}

func (f *fakeCommentRepo) CreateComment(comment *models.Comment) error {
	comment.ID = f.nextID
	f.nextID++
	f.comments = append(f.comments, *comment)
	return nil
}

func (f *fakeCommentRepo) GetCommentsByPostID(postID uint) ([]models.Comment, error) {
	var matched []models.Comment
	for _, cm := range f.comments {
		if cm.PostID == postID {
			matched = append(matched, cm)
		}
	}
	return matched, nil
}

type fakeAuthRepo struct {
	nextID uint
	users  []models.User
	roles  map[uuid.UUID]models.Role
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{nextID: 1, roles: make(map[uuid.UUID]models.Role)}
}

func (f *fakeAuthRepo) addUser(username string) *models.User {
	user := models.User{
		Fullname: username,
		Username: username,
		Email:    username + "@example.com",
	}
	user.ID = f.nextID
	f.nextID++
	f.users = append(f.users, user)
	return &user
}

func (f *fakeAuthRepo) CreateUser(user *models.User) (*models.User, error) {
	if user.RoleID == uuid.Nil {
		defaultRole, err := f.FindRoleByName(models.RoleUser)
		if err != nil {
			defaultRole = &models.Role{ID: uuid.New(), Name: models.RoleUser}
			f.roles[defaultRole.ID] = *defaultRole
		}
		user.RoleID = defaultRole.ID
	}
	user.ID = f.nextID
	f.nextID++
	f.users = append(f.users, *user)
	return user, nil
}

func (f *fakeAuthRepo) IsEmailExist(email string) error {
	for _, u := range f.users {
		if u.Email == email {
			return gorm.ErrDuplicatedKey
		}
	}
	return nil
}

func (f *fakeAuthRepo) IsUsernameExist(username string) error {
	for _, u := range f.users {
		if u.Username == username {
			return gorm.ErrDuplicatedKey
		}
	}
	return nil
}

func (f *fakeAuthRepo) FindUserByEmail(email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepo) FindUserByUsername(username string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Username == username {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepo) FindUserByID(id uint) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepo) AddToBlackList(blacklist *models.Blacklist) error { return nil }

func (f *fakeAuthRepo) IsTokenInBlacklist(token string) bool { return false }

func (f *fakeAuthRepo) FindRoleByID(roleID uuid.UUID) (*models.Role, error) {
	if role, ok := f.roles[roleID]; ok {
		return &role, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepo) FindRoleByName(name string) (*models.Role, error) {
	for _, role := range f.roles {
		if role.Name == name {
			r := role
			return &r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
