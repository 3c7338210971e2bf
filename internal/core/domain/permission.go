package domain

type Permission string

const (
	PermAddUser    Permission = "api.add_user"
	PermViewUser   Permission = "api.view_user"
	PermChangeUser Permission = "api.change_user"
	PermDeleteUser Permission = "api.delete_user"

	PermAddRestaurant    Permission = "api.add_restaurant"
	PermChangeRestaurant Permission = "api.change_restaurant"
	PermDeleteRestaurant Permission = "api.delete_restaurant"
	PermViewRestaurant   Permission = "api.view_restaurant"

	PermAddMenu           Permission = "api.add_menu"
	PermChangeMenu        Permission = "api.change_menu"
	PermDeleteMenu        Permission = "api.delete_menu"
	PermViewMenu          Permission = "api.view_menu"
	PermGetCurrentDayMenu Permission = "api.get_current_day_menu"
	PermUploadMenu        Permission = "api.upload_menu"

	PermAddEmployee    Permission = "api.add_employee"
	PermChangeEmployee Permission = "api.change_employee"
	PermDeleteEmployee Permission = "api.delete_employee"
	PermViewEmployee   Permission = "api.view_employee"

	PermAddVote            Permission = "api.add_vote"
	PermChangeVote         Permission = "api.change_vote"
	PermDeleteVote         Permission = "api.delete_vote"
	PermViewVote           Permission = "api.view_vote"
	PermCastVote           Permission = "api.cast_vote"
	PermGetMyVote          Permission = "api.get_my_vote"
	PermGetAllVotesResults Permission = "api.get_all_votes_results"
)

type Resource string

const (
	ResourceUser       Resource = "user"
	ResourceRestaurant Resource = "restaurant"
	ResourceMenu       Resource = "menu"
	ResourceEmployee   Resource = "employee"
	ResourceVote       Resource = "vote"
)

type Action string

const (
	ActionCreate          Action = "create"
	ActionList            Action = "list"
	ActionRetrieve        Action = "retrieve"
	ActionUpdate          Action = "update"
	ActionDestroy         Action = "destroy"
	ActionUploadMenu      Action = "upload_menu"
	ActionCurrentDayMenu  Action = "current_day_menu"
	ActionCastVote        Action = "cast_vote"
	ActionMyVote          Action = "my_vote"
	ActionAllVotesResults Action = "all_votes_results"
)

type endpoint struct {
	resource Resource
	action   Action
}

// requiredPermissions maps each (resource, action) pair to the single
// permission a caller must hold. Pairs absent from the table are denied.
var requiredPermissions = map[endpoint]Permission{
	{ResourceUser, ActionCreate}:   PermAddUser,
	{ResourceUser, ActionList}:     PermViewUser,
	{ResourceUser, ActionRetrieve}: PermViewUser,

	{ResourceRestaurant, ActionCreate}:   PermAddRestaurant,
	{ResourceRestaurant, ActionList}:     PermViewRestaurant,
	{ResourceRestaurant, ActionRetrieve}: PermViewRestaurant,
	{ResourceRestaurant, ActionUpdate}:   PermChangeRestaurant,
	{ResourceRestaurant, ActionDestroy}:  PermDeleteRestaurant,

	{ResourceMenu, ActionCreate}:         PermAddMenu,
	{ResourceMenu, ActionList}:           PermViewMenu,
	{ResourceMenu, ActionRetrieve}:       PermViewMenu,
	{ResourceMenu, ActionUpdate}:         PermChangeMenu,
	{ResourceMenu, ActionDestroy}:        PermDeleteMenu,
	{ResourceMenu, ActionUploadMenu}:     PermUploadMenu,
	{ResourceMenu, ActionCurrentDayMenu}: PermGetCurrentDayMenu,

	{ResourceEmployee, ActionCreate}:   PermAddEmployee,
	{ResourceEmployee, ActionList}:     PermViewEmployee,
	{ResourceEmployee, ActionRetrieve}: PermViewEmployee,
	{ResourceEmployee, ActionUpdate}:   PermChangeEmployee,
	{ResourceEmployee, ActionDestroy}:  PermDeleteEmployee,

	{ResourceVote, ActionCreate}:          PermAddVote,
	{ResourceVote, ActionList}:            PermViewVote,
	{ResourceVote, ActionRetrieve}:        PermViewVote,
	{ResourceVote, ActionUpdate}:          PermChangeVote,
	{ResourceVote, ActionDestroy}:         PermDeleteVote,
	{ResourceVote, ActionCastVote}:        PermCastVote,
	{ResourceVote, ActionMyVote}:          PermGetMyVote,
	{ResourceVote, ActionAllVotesResults}: PermGetAllVotesResults,
}

var rolePermissions = map[Role]map[Permission]bool{
	RoleRestaurantOwner: {
		PermUploadMenu: true,
	},
	RoleEmployee: {
		PermGetCurrentDayMenu: true,
		PermCastVote:          true,
		PermGetMyVote:         true,
	},
}

func RequiredPermission(resource Resource, action Action) (Permission, bool) {
	p, ok := requiredPermissions[endpoint{resource, action}]
	return p, ok
}

// HasPermission reports whether role grants p. Admins hold every permission.
func (r Role) HasPermission(p Permission) bool {
	if r == RoleAdmin {
		return true
	}
	return rolePermissions[r][p]
}

// Allowed is the permission gate: one table lookup per request.
func Allowed(role Role, resource Resource, action Action) bool {
	p, ok := RequiredPermission(resource, action)
	if !ok {
		return false
	}
	return role.HasPermission(p)
}
