package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"social-network/internal/filter"
	"social-network/internal/model"
	"social-network/internal/service"
	"social-network/pkg/pagination"
	"social-network/pkg/redis"
	"social-network/pkg/response"
)

// defaultUserPageSize is the default page size of user lists.
const defaultUserPageSize = 5

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// userRequest is the body of register and update requests.
type userRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=45"`
	Surname   string `json:"surname" binding:"required,min=1,max=45"`
	BirthDate string `json:"birthDate" binding:"omitempty,datetime=2006-01-02"`
	Gender    string `json:"gender" binding:"omitempty,oneof=M F"`
	Interests string `json:"interests" binding:"max=512"`
	CityID    *uint  `json:"cityId"`
}

func (r *userRequest) toInput() (service.RegisterInput, error) {
	in := service.RegisterInput{
		Name:      r.Name,
		Surname:   r.Surname,
		Gender:    model.ParseGender(r.Gender),
		Interests: r.Interests,
		CityID:    r.CityID,
	}
	if r.BirthDate != "" {
		birthDate, err := time.Parse("2006-01-02", r.BirthDate)
		if err != nil {
			return in, err
		}
		in.BirthDate = &birthDate
	}
	return in, nil
}

// Register creates a user account and returns the new id.
func (h *UserHandler) Register(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	in, err := req.toInput()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	id, err := h.service.Register(in)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "city not found")
			return
		}
		response.InternalError(c, "failed to register user")
		return
	}

	response.Success(c, gin.H{"id": id})
}

// GetPage returns a user's profile page, served from cache when possible.
func (h *UserHandler) GetPage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var cached response.UserPage
	if err := redis.GetUserPage(id, &cached); err == nil {
		response.Success(c, &cached)
		return
	}

	user, friends, err := h.service.GetUser(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, "failed to load user")
		return
	}

	page := response.BuildUserPage(user, friends)
	_ = redis.CacheUserPage(id, page)

	response.Success(c, page)
}

// Update overwrites the editable profile fields of a user.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	in, err := req.toInput()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.UpdateUser(id, in); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, "failed to update user")
		return
	}

	_ = redis.InvalidateUserPages(id)

	response.Success(c, gin.H{"id": id})
}

// Delete removes a user's page.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteUser(id); err != nil {
		response.InternalError(c, "failed to delete user")
		return
	}

	_ = redis.InvalidateUserPages(id)

	response.Success(c, nil)
}

// List searches users with the query-parameter filter. Malformed optional
// criteria impose no constraint instead of failing the request.
func (h *UserHandler) List(c *gin.Context) {
	f := bindUserFilter(c)

	page := pagination.FromQuery(c, defaultUserPageSize)
	users, total, err := h.service.Find(f, page)
	if err != nil {
		response.InternalError(c, "failed to search users")
		return
	}

	response.Success(c, pagination.NewPage(response.FilterUserList(users), total, page))
}

// Friends searches within a user's friend list under the same filter
// fields as List.
func (h *UserHandler) Friends(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	f := bindUserFilter(c)

	page := pagination.FromQuery(c, defaultUserPageSize)
	friends, total, err := h.service.GetFriends(id, f, page)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, "failed to search friends")
		return
	}

	response.Success(c, pagination.NewPage(response.FilterUserList(friends), total, page))
}

// Candidates searches users the given user could befriend.
func (h *UserHandler) Candidates(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	f := bindUserFilter(c)

	page := pagination.FromQuery(c, defaultUserPageSize)
	candidates, total, err := h.service.GetCandidates(id, f, page)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, "failed to search candidates")
		return
	}

	response.Success(c, pagination.NewPage(response.FilterUserList(candidates), total, page))
}

// AddFriend links the path user with the friendId query parameter.
func (h *UserHandler) AddFriend(c *gin.Context) {
	userID, friendID, ok := parseFriendPair(c)
	if !ok {
		return
	}

	if err := h.service.AddFriend(userID, friendID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, "failed to add friend")
		return
	}

	_ = redis.InvalidateUserPages(userID, friendID)

	response.Success(c, gin.H{"id": userID})
}

// DeleteFriend removes the friendship between the path user and the
// friendId query parameter.
func (h *UserHandler) DeleteFriend(c *gin.Context) {
	userID, friendID, ok := parseFriendPair(c)
	if !ok {
		return
	}

	if err := h.service.DeleteFriend(userID, friendID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, "failed to delete friend")
		return
	}

	_ = redis.InvalidateUserPages(userID, friendID)

	response.Success(c, nil)
}

// bindUserFilter reads the search criteria one query parameter at a time,
// so a malformed parameter degrades to no constraint without dropping the
// valid ones next to it.
func bindUserFilter(c *gin.Context) *filter.UserFilter {
	f := &filter.UserFilter{
		Fio:    c.Query("fio"),
		City:   c.Query("city"),
		Gender: c.Query("gender"),
	}
	if n, err := strconv.Atoi(c.Query("minAge")); err == nil {
		f.MinAge = &n
	}
	if n, err := strconv.Atoi(c.Query("maxAge")); err == nil {
		f.MaxAge = &n
	}
	return f
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid "+param)
		return 0, false
	}
	return uint(id), true
}

func parseFriendPair(c *gin.Context) (userID, friendID uint, ok bool) {
	userID, ok = parseID(c, "id")
	if !ok {
		return 0, 0, false
	}

	raw, err := strconv.ParseUint(c.Query("friendId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid friendId")
		return 0, 0, false
	}

	return userID, uint(raw), true
}
