package domain

// Discord permission bits used by the guild setup.
const (
	PermCreateInstantInvite   int64 = 1 << 0
	PermKickMembers           int64 = 1 << 1
	PermBanMembers            int64 = 1 << 2
	PermAdministrator         int64 = 1 << 3
	PermManageChannels        int64 = 1 << 4
	PermAddReactions          int64 = 1 << 6
	PermStream                int64 = 1 << 9
	PermViewChannel           int64 = 1 << 10
	PermSendMessages          int64 = 1 << 11
	PermSendTTSMessages       int64 = 1 << 12
	PermManageMessages        int64 = 1 << 13
	PermEmbedLinks            int64 = 1 << 14
	PermAttachFiles           int64 = 1 << 15
	PermReadMessageHistory    int64 = 1 << 16
	PermMentionEveryone       int64 = 1 << 17
	PermUseExternalEmojis     int64 = 1 << 18
	PermConnect               int64 = 1 << 20
	PermSpeak                 int64 = 1 << 21
	PermMuteMembers           int64 = 1 << 22
	PermDeafenMembers         int64 = 1 << 23
	PermMoveMembers           int64 = 1 << 24
	PermUseVAD                int64 = 1 << 25
	PermChangeNickname        int64 = 1 << 26
	PermManageNicknames       int64 = 1 << 27
	PermManageRoles           int64 = 1 << 28
	PermManageEvents          int64 = 1 << 33
	PermManageThreads         int64 = 1 << 34
	PermCreatePublicThreads   int64 = 1 << 35
	PermSendMessagesInThreads int64 = 1 << 38
	PermUseEmbeddedActivities int64 = 1 << 39
	PermModerateMembers       int64 = 1 << 40
	PermUseSoundboard         int64 = 1 << 42
	PermCreateEvents          int64 = 1 << 44
	PermSendPolls             int64 = 1 << 49
)

// PresetGeneral is the permission set Discord grants to a plain member.
const PresetGeneral = PermCreateInstantInvite |
	PermAddReactions |
	PermViewChannel |
	PermSendMessages |
	PermSendTTSMessages |
	PermEmbedLinks |
	PermAttachFiles |
	PermReadMessageHistory |
	PermMentionEveryone |
	PermUseExternalEmojis |
	PermConnect |
	PermSpeak |
	PermUseVAD |
	PermChangeNickname

// Role presets.
const (
	AdminRolePermissions = PermAdministrator

	ModeratorRolePermissions = PresetGeneral |
		PermKickMembers |
		PermBanMembers |
		PermManageChannels |
		PermStream |
		PermManageMessages |
		PermMuteMembers |
		PermDeafenMembers |
		PermMoveMembers |
		PermManageNicknames |
		PermManageRoles |
		PermManageEvents |
		PermManageThreads |
		PermCreatePublicThreads |
		PermSendMessagesInThreads |
		PermUseEmbeddedActivities |
		PermModerateMembers |
		PermUseSoundboard |
		PermCreateEvents |
		PermSendPolls

	SpectatorRolePermissions = PresetGeneral
	PlayerRolePermissions    = PresetGeneral
)

// Overwrite is a role-scoped permission overwrite on a channel.
type Overwrite struct {
	RoleID string
	Allow  int64
	Deny   int64
}

func hide(roleID string) Overwrite { return Overwrite{RoleID: roleID, Deny: PermViewChannel} }
func show(roleID string) Overwrite { return Overwrite{RoleID: roleID, Allow: PermViewChannel} }

// RoadCategoryOverwrites hides the road category from players and @everyone.
func RoadCategoryOverwrites(everyoneID, playerID, spectatorID, moderatorID string) []Overwrite {
	return []Overwrite{hide(playerID), hide(everyoneID), show(spectatorID), show(moderatorID)}
}

// AdminCategoryOverwrites restricts the administration category to moderators.
func AdminCategoryOverwrites(everyoneID, spectatorID, playerID, moderatorID string) []Overwrite {
	return []Overwrite{hide(everyoneID), hide(spectatorID), hide(playerID), show(moderatorID)}
}

// CharacterChannelOverwrites hides character sheets from players.
func CharacterChannelOverwrites(playerID string) []Overwrite {
	return []Overwrite{hide(playerID)}
}

// MembersOnlyOverwrites opens a place or road to its own role only.
func MembersOnlyOverwrites(roleID, everyoneID string) []Overwrite {
	return []Overwrite{
		{RoleID: roleID, Allow: PermViewChannel | PermSendMessages | PermReadMessageHistory},
		hide(everyoneID),
	}
}
