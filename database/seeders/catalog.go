package seeders

import (
	"log"

	"tourism-booking/models/catalog"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// SeedCatalog inserts the sample catalog when the table is empty.
func SeedCatalog(db *gorm.DB) {
	log.Printf("🔍 Checking catalog data integrity...")

	var count int64
	if err := db.Model(&catalog.Item{}).Count(&count).Error; err != nil {
		log.Printf("❌ Failed to count catalog items: %v", err)
		return
	}
	if count > 0 {
		log.Printf("✅ Catalog already seeded (%d items)", count)
		return
	}

	items := []catalog.Item{
		{
			ID:       uuid.NewString(),
			Kind:     catalog.KindHealthPackage,
			NameKo:   "기본 건강검진 패키지",
			NameEn:   strPtr("Basic Health Checkup Package"),
			NameZh:   strPtr("基本健康检查套餐"),
			PriceKRW: 250000,
			PriceUSD: intPtr(200),
			Status:   catalog.ItemStatusOnSale,
		},
		{
			ID:       uuid.NewString(),
			Kind:     catalog.KindHealthPackage,
			NameKo:   "정밀 건강검진 패키지",
			NameEn:   strPtr("Comprehensive Health Checkup Package"),
			NameZh:   strPtr("精密健康检查套餐"),
			PriceKRW: 800000,
			PriceUSD: intPtr(650),
			Status:   catalog.ItemStatusOnSale,
		},
		{
			ID:       uuid.NewString(),
			Kind:     catalog.KindHealthPackage,
			NameKo:   "심혈관 정밀검진",
			NameEn:   strPtr("Cardiovascular Checkup"),
			PriceKRW: 700000,
			PriceUSD: intPtr(560),
			Status:   catalog.ItemStatusOnSale,
		},
		{
			ID:       uuid.NewString(),
			Kind:     catalog.KindWellnessProgram,
			NameKo:   "소화기 질환 한방 치료",
			NameEn:   strPtr("Digestive Disorder Korean Medicine Treatment"),
			PriceKRW: 180000,
			PriceUSD: intPtr(145),
			Status:   catalog.ItemStatusOnSale,
		},
		{
			ID:       uuid.NewString(),
			Kind:     catalog.KindWellnessProgram,
			NameKo:   "근골격 통증 추나 치료",
			NameEn:   strPtr("Musculoskeletal Pain Chuna Treatment"),
			PriceKRW: 350000,
			PriceUSD: intPtr(280),
			Status:   catalog.ItemStatusOnSale,
		},
		{
			ID:       uuid.NewString(),
			Kind:     catalog.KindTourPackage,
			NameKo:   "수도권 노포 미식 투어 3박4일",
			NameEn:   strPtr("Seoul Old Restaurant Tour 3N4D"),
			PriceKRW: 1375000,
			PriceUSD: intPtr(1100),
			Status:   catalog.ItemStatusOnSale,
		},
		{
			ID:       uuid.NewString(),
			Kind:     catalog.KindTourPackage,
			NameKo:   "부산 경상도 해안 미식 투어 4박5일",
			NameEn:   strPtr("Busan Gyeongsang Coastal Cuisine Tour 4N5D"),
			PriceKRW: 1625000,
			PriceUSD: intPtr(1300),
			Status:   catalog.ItemStatusOnSale,
		},
	}

	for _, item := range items {
		if err := db.Create(&item).Error; err != nil {
			log.Printf("❌ Failed to seed catalog item %s: %v", item.NameKo, err)
		}
	}
	log.Printf("✅ Seeded %d catalog items", len(items))
}
