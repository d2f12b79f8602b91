package guildService

import (
	"fmt"

	"gorm.io/gorm"

	"terminusaOnline/models"
)

// GetGuildInfo looks a guild up by name, creating it with the given leader
// when it does not exist yet.
func GetGuildInfo(db *gorm.DB, name string, leaderID uint) (*models.Guild, error) {
	var guild models.Guild
	guildResult := db.Where("name = ?", name).First(&guild)

	if guildResult.RowsAffected == 0 {
		newGuild := &models.Guild{Name: name, LeaderID: leaderID, RecruitmentStatus: "open"}
		newGuildResult := db.Create(newGuild)
		if newGuildResult.Error != nil {
			return nil, newGuildResult.Error
		}
		guild = *newGuild

		result := db.Model(&models.User{}).
			Where("id = ?", leaderID).
			UpdateColumns(map[string]interface{}{"guild_id": guild.ID, "guild_rank": "leader"})
		if result.Error != nil {
			return nil, result.Error
		}
	}

	return &guild, nil
}

// AddMember places a user in a guild, respecting its member cap and level
// requirement.
func AddMember(db *gorm.DB, guildID, userID uint) error {
	var guild models.Guild
	if result := db.First(&guild, guildID); result.Error != nil {
		return result.Error
	}
	if guild.RecruitmentStatus != "open" {
		return fmt.Errorf("guild %s is not recruiting", guild.Name)
	}

	var members int64
	if result := db.Model(&models.User{}).Where("guild_id = ?", guildID).Count(&members); result.Error != nil {
		return result.Error
	}
	if members >= int64(guild.MaxMembers) {
		return fmt.Errorf("guild %s is full", guild.Name)
	}

	var user models.User
	if result := db.First(&user, userID); result.Error != nil {
		return result.Error
	}
	if user.Level < guild.MinLevelRequirement {
		return fmt.Errorf("user %s is below guild level requirement %d", user.Username, guild.MinLevelRequirement)
	}
	if user.GuildID != nil {
		return fmt.Errorf("user %s already belongs to a guild", user.Username)
	}

	result := db.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumns(map[string]interface{}{"guild_id": guildID, "guild_rank": "member"})
	return result.Error
}

// SetTaxRates updates a guild's crystal and exon tax rates (whole percent,
// 0-100).
func SetTaxRates(db *gorm.DB, guildID uint, crystalRate, exonRate int) error {
	if crystalRate < 0 || crystalRate > 100 || exonRate < 0 || exonRate > 100 {
		return fmt.Errorf("tax rates must be between 0 and 100")
	}
	result := db.Model(&models.Guild{}).
		Where("id = ?", guildID).
		UpdateColumns(map[string]interface{}{"crystal_tax_rate": crystalRate, "exon_tax_rate": exonRate})
	return result.Error
}
