package catalog

// treatments is the fixed taxonomy. Entries are grouped by id band; the
// declaration order here is the committed catalog order.
var treatments = []Entry{
	// Ladies hair cutting and styling
	{10, "Ladies Cut & Blow Dry"},
	{11, "Ladies Dry Cut"},
	{12, "Ladies Restyle"},
	{13, "Blow Dry"},
	{14, "Bouncy Blow Dry"},
	{15, "Wash & Blow Dry"},
	{16, "Curly Blow Dry"},
	{17, "Fringe Trim"},
	{18, "Wet Cut"},
	{19, "Updo"},
	{20, "Bridal Hair Trial"},
	{21, "Bridal Hair on the Day"},
	{22, "Occasion Styling"},
	{23, "Hollywood Waves"},
	{24, "GHD Curls"},
	{25, "Straightening Blow Dry"},
	{26, "Silk Press"},
	{27, "Hair Up"},
	{28, "Braiding"},
	{29, "Box Braids"},
	{30, "Cornrows"},
	{31, "Twists"},
	{32, "Locs Maintenance"},
	{33, "Weave Installation"},
	{34, "Wig Fitting"},
	{35, "Tape-In Extensions"},
	{36, "Micro Ring Extensions"},
	{37, "Nano Ring Extensions"},
	{38, "Extension Removal"},
	{39, "Extension Maintenance"},
	{40, "Children's Cut"},
	{41, "Teen Cut & Finish"},
	{42, "Ponytail Styling"},
	{43, "Heatless Styling"},
	{44, "Perm"},
	{45, "Digital Perm"},
	{46, "Relaxer"},
	{47, "Keratin Smoothing"},
	{48, "Brazilian Blow Dry"},
	{49, "Permanent Straightening"},
	{50, "Prom Hair Styling"},
	{51, "Festival Hair Styling"},
	{52, "Hair Tinsel Application"},
	{53, "Clip-In Extension Styling"},
	{54, "Top Knot & Bun Styling"},
	{55, "Flat Iron Styling"},

	// Nails
	{60, "Gel Polish Hands"},
	{61, "Gel Polish Toes"},
	{62, "Gel Polish Removal"},
	{63, "Acrylic Full Set"},
	{64, "Acrylic Infill"},
	{65, "Acrylic Removal"},
	{66, "Nail Art"},
	{67, "French Polish"},
	{68, "Chrome Nails"},
	{69, "Ombre Nails"},
	{70, "Builder Gel"},
	{71, "BIAB Nails"},
	{72, "Dip Powder Nails"},
	{73, "Polygel Nails"},
	{74, "Nail Extension Repair"},
	{75, "Nail Strengthening Treatment"},
	{76, "Cuticle Care"},
	{77, "Hand Mask Treatment"},
	{78, "Paraffin Wax Hands"},
	{79, "Express Manicure"},
	{80, "File & Polish"},
	{81, "Manicure"},
	{82, "Luxury Manicure"},
	{83, "Gel Manicure"},
	{84, "French Manicure"},
	{85, "Men's Manicure"},
	{86, "Japanese Manicure"},
	{87, "Russian Manicure"},
	{88, "Pedicure"},
	{89, "Luxury Pedicure"},
	{90, "Gel Pedicure"},
	{91, "Express Pedicure"},
	{92, "Medical Pedicure"},
	{93, "Spa Pedicure"},
	{94, "Callus Peel"},
	{95, "Foot File Treatment"},
	{96, "Paraffin Wax Feet"},
	{97, "Toe Nail Trim"},
	{98, "Shellac Hands"},
	{99, "Shellac Toes"},
	{100, "Shellac Removal"},
	{101, "Nail Repair"},
	{102, "Press-On Nail Application"},
	{103, "Gel Overlay"},
	{104, "Acrylic Toes"},
	{105, "Toe Nail Reconstruction"},
	{106, "Nail Biting Treatment"},
	{107, "Matte Finish Nails"},
	{108, "Encapsulated Nail Art"},

	// Eyes and brows
	{140, "Eyebrow Wax"},
	{141, "Eyebrow Thread"},
	{142, "Eyebrow Tint"},
	{143, "Eyebrow Wax & Tint"},
	{144, "Eyebrow Lamination"},
	{145, "Henna Brows"},
	{146, "Microblading"},
	{147, "Microblading Top-Up"},
	{148, "Ombre Powder Brows"},
	{149, "Eyelash Tint"},
	{150, "Lash & Brow Tint"},
	{151, "Lash Lift"},
	{152, "Lash Lift & Tint"},
	{153, "Classic Lash Extensions"},
	{154, "Hybrid Lash Extensions"},
	{155, "Russian Volume Lashes"},
	{156, "Mega Volume Lashes"},
	{157, "Lash Infill"},
	{158, "Lash Removal"},
	{159, "Strip Lash Application"},
	{160, "Cluster Lashes"},
	{161, "Brow Shape Consultation"},
	{162, "Brow Sculpt"},
	{163, "Eyelash Perm"},
	{164, "Brow Tidy"},
	{165, "Brow Bleaching"},
	{166, "Lash Bath"},
	{167, "Bottom Lash Extensions"},
	{168, "Coloured Lash Extensions"},
	{169, "Wispy Lash Extensions"},

	// Massage
	{200, "Swedish Massage"},
	{201, "Deep Tissue Massage"},
	{202, "Sports Massage"},
	{203, "Hot Stone Massage"},
	{204, "Aromatherapy Massage"},
	{205, "Back, Neck & Shoulder Massage"},
	{206, "Full Body Massage"},
	{207, "Indian Head Massage"},
	{208, "Thai Massage"},
	{209, "Shiatsu"},
	{210, "Reflexology"},
	{211, "Pregnancy Massage"},
	{212, "Lymphatic Drainage Massage"},
	{213, "Cupping Massage"},
	{214, "Bamboo Massage"},
	{215, "Candle Massage"},
	{216, "Couples Massage"},
	{217, "Foot Massage"},
	{218, "Hand & Arm Massage"},
	{219, "Scalp Massage"},
	{220, "Chair Massage"},
	{221, "Trigger Point Therapy"},
	{222, "Myofascial Release"},
	{223, "Remedial Massage"},
	{224, "Lomi Lomi Massage"},
	{225, "Ayurvedic Massage"},
	{226, "Four Hands Massage"},
	{227, "Herbal Compress Massage"},
	{228, "Himalayan Salt Stone Massage"},
	{229, "Abdominal Massage"},
	{230, "Percussion Therapy"},
	{231, "Seated Acupressure Massage"},

	// Face
	{300, "Express Facial"},
	{301, "Deep Cleansing Facial"},
	{302, "Hydrating Facial"},
	{303, "Anti-Ageing Facial"},
	{304, "Brightening Facial"},
	{305, "Acne Facial"},
	{306, "Sensitive Skin Facial"},
	{307, "Luxury Facial"},
	{308, "Men's Facial"},
	{309, "Teen Facial"},
	{310, "Microdermabrasion"},
	{311, "Dermaplaning"},
	{312, "Chemical Peel"},
	{313, "Glycolic Peel"},
	{314, "Enzyme Peel"},
	{315, "LED Light Therapy"},
	{316, "Oxygen Facial"},
	{317, "Hydrafacial"},
	{318, "Microneedling"},
	{319, "Radio Frequency Facial"},
	{320, "Galvanic Facial"},
	{321, "High Frequency Treatment"},
	{322, "Gua Sha Facial"},
	{323, "Facial Cupping"},
	{324, "Collagen Mask Treatment"},
	{325, "Gold Leaf Facial"},
	{326, "Vitamin C Facial"},
	{327, "Back Facial"},
	{328, "Extraction Facial"},
	{329, "Skin Consultation"},
	{330, "Cryotherapy Facial"},
	{331, "Carbon Laser Facial"},
	{332, "Jelly Mask Facial"},
	{333, "Enzyme Mask Treatment"},
	{334, "Lymphatic Facial Massage"},

	// Body
	{400, "Body Scrub"},
	{401, "Body Wrap"},
	{402, "Mud Wrap"},
	{403, "Seaweed Wrap"},
	{404, "Detox Wrap"},
	{405, "Salt Glow"},
	{406, "Spray Tan"},
	{407, "Spray Tan Double Dip"},
	{408, "Sunbed Session"},
	{409, "Body Exfoliation"},
	{410, "Cellulite Treatment"},
	{411, "Body Contouring"},
	{412, "Cryolipolysis"},
	{413, "Ultrasonic Cavitation"},
	{414, "Radio Frequency Body Treatment"},
	{415, "Pressotherapy"},
	{416, "Infrared Sauna Session"},
	{417, "Steam Room Session"},
	{418, "Flotation Therapy"},
	{419, "Hammam Ritual"},
	{420, "Back Scrub & Massage"},
	{421, "Bust Firming Treatment"},
	{422, "Stretch Mark Treatment"},
	{423, "Leg & Foot Ritual"},
	{424, "Chocolate Body Wrap"},
	{425, "Brown Sugar Scrub"},
	{426, "Aloe Vera Wrap"},

	// Hair removal
	{500, "Full Leg Wax"},
	{501, "Half Leg Wax"},
	{502, "Bikini Wax"},
	{503, "Brazilian Wax"},
	{504, "Hollywood Wax"},
	{505, "Underarm Wax"},
	{506, "Full Arm Wax"},
	{507, "Half Arm Wax"},
	{508, "Back Wax"},
	{509, "Chest Wax"},
	{510, "Lip Wax"},
	{511, "Chin Wax"},
	{512, "Lip & Chin Wax"},
	{513, "Full Face Wax"},
	{514, "Nostril Wax"},
	{515, "Ear Wax Removal"},
	{516, "Full Body Wax"},
	{517, "Hot Wax Treatment"},
	{518, "Strip Wax Treatment"},
	{519, "Sugaring"},
	{520, "Threading Full Face"},
	{521, "Lip Thread"},
	{522, "Chin Thread"},
	{523, "Electrolysis"},
	{524, "Laser Hair Removal Consultation"},
	{525, "Laser Hair Removal Small Area"},
	{526, "Laser Hair Removal Medium Area"},
	{527, "Laser Hair Removal Large Area"},
	{528, "IPL Hair Removal"},
	{529, "Toe Wax"},
	{530, "Stomach Wax"},
	{531, "Shoulder Wax"},
	{532, "Buttock Wax"},

	// Holistic and wellness
	{600, "Reiki"},
	{601, "Acupuncture"},
	{602, "Acupressure"},
	{603, "Hopi Ear Candles"},
	{604, "Crystal Healing"},
	{605, "Sound Bath"},
	{606, "Meditation Session"},
	{607, "Breathwork Session"},
	{608, "Yoga Class"},
	{609, "Pilates Class"},
	{610, "Nutrition Consultation"},
	{611, "Wellness Coaching"},
	{612, "Hypnotherapy"},
	{613, "Life Coaching Session"},
	{614, "Bowen Therapy"},
	{615, "Kinesiology"},
	{616, "Chakra Balancing"},
	{617, "Energy Healing"},
	{618, "Aromatherapy Consultation"},
	{619, "Ear Seeds"},
	{620, "Gong Bath"},
	{621, "Qigong Session"},

	// Hair colouring and treatments
	{701, "Hair Colouring"},
	{702, "Full Head Tint"},
	{703, "Root Tint"},
	{704, "Root Stretch"},
	{705, "Semi-Permanent Tint"},
	{706, "Quasi Tint"},
	{707, "Toner"},
	{708, "Gloss Treatment"},
	{709, "Full Head Highlights"},
	{710, "Half Head Highlights"},
	{711, "T-Section Highlights"},
	{712, "Lowlights"},
	{713, "Babylights"},
	{714, "Balayage"},
	{715, "Ombre"},
	{716, "Sombre"},
	{717, "Dip Dye"},
	{718, "Colour Melt"},
	{719, "Root Melt"},
	{720, "Money Piece"},
	{721, "Fashion Shades"},
	{722, "Pastel Shades"},
	{723, "Vivid Shades"},
	{724, "Full Head Bleach"},
	{725, "Bleach Bath"},
	{726, "Colour Correction"},
	{727, "Colour Strip"},
	{728, "Pre-Pigmentation"},
	{729, "Grey Blending"},
	{730, "Grey Coverage"},
	{731, "Men's Colour Camouflage"},
	{732, "Colour Consultation"},
	{733, "Skin Test"},
	{734, "Olaplex Treatment"},
	{735, "K18 Treatment"},
	{736, "Bond Repair Treatment"},
	{737, "Deep Conditioning Treatment"},
	{738, "Scalp Treatment"},
	{739, "Scalp Detox"},
	{740, "Protein Treatment"},
	{741, "Moisture Treatment"},
	{742, "Glossing Service"},
	{743, "Root Shadow"},
	{744, "Reverse Balayage"},
	{745, "Foilyage"},
	{746, "Teasylights"},

	// Barbering and men's grooming
	{800, "Men's Cut"},
	{801, "Men's Cut & Finish"},
	{802, "Skin Fade"},
	{803, "Scissor Cut"},
	{804, "Clipper Cut"},
	{805, "Buzz Cut"},
	{806, "Crew Cut"},
	{807, "Beard Trim"},
	{808, "Beard Shape Up"},
	{809, "Beard Sculpt"},
	{810, "Hot Towel Shave"},
	{811, "Wet Shave"},
	{812, "Head Shave"},
	{813, "Cut Throat Shave"},
	{814, "Moustache Trim"},
	{815, "Line Up"},
	{816, "Neck Shave"},
	{817, "Boy's Cut"},
	{818, "OAP Gent's Cut"},
	{819, "Hair & Beard Package"},
	{820, "Beard Colouring"},
	{821, "Men's Highlights"},
	{822, "Men's Perm"},
	{823, "Scalp Micropigmentation"},
	{824, "Beard Conditioning Treatment"},
	{825, "Traditional Turkish Shave"},
	{826, "Ear & Nose Wax"},
	{827, "Hair Tattoo Design"},

	// Aesthetics and advanced
	{900, "Anti-Wrinkle Consultation"},
	{901, "Dermal Filler Consultation"},
	{902, "Lip Filler"},
	{903, "Cheek Filler"},
	{904, "Jawline Filler"},
	{905, "Chin Filler"},
	{906, "Tear Trough Filler"},
	{907, "Non-Surgical Rhinoplasty"},
	{908, "Profhilo"},
	{909, "Skin Boosters"},
	{910, "Polynucleotides"},
	{911, "Fat Dissolving Injections"},
	{912, "Vitamin B12 Injection"},
	{913, "Vitamin Drip"},
	{914, "PRP Treatment"},
	{915, "PRP Hair Restoration"},
	{916, "Mesotherapy"},
	{917, "Thread Lift Consultation"},
	{918, "Laser Skin Resurfacing"},
	{919, "Laser Tattoo Removal"},
	{920, "Tattoo Removal Consultation"},
	{921, "Mole & Skin Tag Consultation"},
	{922, "Thread Vein Treatment"},
	{923, "Milia Removal"},
	{924, "Plasma Fibroblast"},
	{925, "Semi-Permanent Makeup Consultation"},
	{926, "Lip Blush"},
	{927, "Permanent Eyeliner"},
	{928, "Scar Camouflage"},
	{929, "Ear Piercing"},
	{930, "Nose Piercing"},
	{931, "Teeth Whitening"},
	{932, "LED Teeth Whitening"},
	{933, "Hyperpigmentation Treatment"},
	{934, "Dermal Roller Treatment"},
	{935, "Cryotherapy Session"},

	// Makeup and occasion
	{1000, "Makeup Application"},
	{1001, "Bridal Makeup"},
	{1002, "Bridal Makeup Trial"},
	{1003, "Occasion Makeup"},
	{1004, "Prom Makeup"},
	{1005, "Editorial Makeup"},
	{1006, "Makeup Lesson"},
	{1007, "Airbrush Makeup"},
	{1008, "Halloween Makeup"},
	{1009, "Strip Lash & Makeup Package"},
	{1010, "Stage Makeup"},
	{1011, "Makeup Masterclass"},

	// Spa packages and misc
	{1100, "Spa Day Package"},
	{1101, "Pamper Package"},
	{1102, "Mother & Daughter Package"},
	{1103, "Bridal Party Package"},
	{1104, "Gentlemen's Package"},
	{1105, "Top to Toe Package"},
	{1106, "Relaxation Package"},
	{1107, "Express Lunchtime Package"},
	{1108, "Gift Voucher Consultation"},
	{1109, "Patch Test"},
	{1110, "New Client Consultation"},
	{1111, "Couples Spa Package"},
	{1112, "Twilight Spa Session"},
}
