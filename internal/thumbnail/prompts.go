package thumbnail

// analysisPrompt returns the vision prompt for the requested language.
func analysisPrompt(language string) string {
	if normalizeLanguage(language) == "en" {
		return promptEnglish
	}
	return promptIndonesian
}

const promptIndonesian = `Anda adalah analis konten video pendek. Analisis thumbnail video ini untuk perencanaan storyboard.

Kembalikan HANYA satu objek JSON dengan field berikut (gunakan snake_case, tanpa penjelasan tambahan, tanpa markdown):
{
  "visual_style": "berbicara_langsung | lifestyle | tutorial | review | lainnya",
  "setting": "dalam_ruangan | luar_ruangan | kamar_tidur | dapur | lainnya",
  "people_count": <jumlah orang yang terlihat>,
  "camera_angle": "close_up | medium_shot | wide_shot",
  "text_overlay_style": "deskripsi singkat teks pada gambar, atau null",
  "color_scheme": "skema warna dominan",
  "hook_elements": ["elemen visual yang menarik perhatian"],
  "confidence_score": <0.0 sampai 1.0>,
  "composition_type": "rule_of_thirds | center_focused | diagonal | symmetrical",
  "focal_point": "apa yang pertama menarik mata",
  "lighting_quality": "natural | artificial | dramatic | soft | harsh",
  "mood_emotion": "excited | calm | urgent | playful | professional | neutral",
  "brand_elements": ["logo atau produk yang terlihat"],
  "story_stage": "opening_hook | problem_setup | solution_reveal | result_show",
  "call_to_action_visible": <true atau false>,
  "product_prominence": "dominant | subtle | background | none",
  "production_quality": "professional | semi_pro | amateur | phone_quality",
  "background_complexity": "minimal | moderate | busy | chaotic",
  "props_objects": ["properti dan objek yang terlihat"],
  "visual_interest_level": "high | medium | low",
  "scroll_stopping_power": "strong | moderate | weak",
  "target_demographic": "remaja | dewasa_muda | keluarga | profesional | ibu_rumah_tangga",
  "content_category": "tutorial | review | demo | lifestyle | entertainment",
  "pacing_indicator": "fast_paced | moderate | slow_build",
  "transition_style": "smooth | jump_cut | fade | dynamic"
}`

const promptEnglish = `You are a short-form video content analyst. Analyze this video thumbnail for storyboard planning.

Return ONLY one JSON object with the following fields (snake_case, no extra explanation, no markdown):
{
  "visual_style": "talking_head | lifestyle | tutorial | review | other",
  "setting": "indoor | outdoor | bedroom | kitchen | other",
  "people_count": <number of visible people>,
  "camera_angle": "close_up | medium_shot | wide_shot",
  "text_overlay_style": "short description of on-image text, or null",
  "color_scheme": "dominant color scheme",
  "hook_elements": ["attention-grabbing visual elements"],
  "confidence_score": <0.0 to 1.0>,
  "composition_type": "rule_of_thirds | center_focused | diagonal | symmetrical",
  "focal_point": "what draws the eye first",
  "lighting_quality": "natural | artificial | dramatic | soft | harsh",
  "mood_emotion": "excited | calm | urgent | playful | professional | neutral",
  "brand_elements": ["visible logos or products"],
  "story_stage": "opening_hook | problem_setup | solution_reveal | result_show",
  "call_to_action_visible": <true or false>,
  "product_prominence": "dominant | subtle | background | none",
  "production_quality": "professional | semi_pro | amateur | phone_quality",
  "background_complexity": "minimal | moderate | busy | chaotic",
  "props_objects": ["visible props and objects"],
  "visual_interest_level": "high | medium | low",
  "scroll_stopping_power": "strong | moderate | weak",
  "target_demographic": "teens | young_adults | families | professionals | parents",
  "content_category": "tutorial | review | demo | lifestyle | entertainment",
  "pacing_indicator": "fast_paced | moderate | slow_build",
  "transition_style": "smooth | jump_cut | fade | dynamic"
}`
