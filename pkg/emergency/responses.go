package emergency

// Response returns the canned reply for a category. An unrecognized category
// gets the generic template; classification has no error path.
func Response(cat Category) string {
	if text, ok := responses[cat]; ok {
		return text
	}
	return genericResponse
}

const genericResponse = `🚨 **EMERGENCY DETECTED**

**CALL 112 (India) / 911 (US) / 999 (UK)**

Please describe the emergency to the dispatcher.
Stay calm and follow their instructions.

**This is a medical emergency. Professional help is essential.**`

var responses = map[Category]string{
	CategoryCardiacArrest: `🚨 **EMERGENCY - CARDIAC ARREST / NOT BREATHING**

**CALL 112 (India) / 911 (US) / 999 (UK) IMMEDIATELY**

**CPR Steps (Hands-Only for untrained):**

1. **CHECK** - Tap shoulders firmly, shout "Are you OK?"
2. **CALL** - If no response, call emergency services immediately
3. **PUSH** - Start chest compressions:
   - Place heel of hand on center of chest
   - Push hard and fast (at least 2 inches deep)
   - Rate: 100-120 compressions per minute
   - Allow full chest recoil between compressions

4. **If trained in CPR:**
   - After 30 compressions, give 2 rescue breaths
   - Tilt head back, lift chin, pinch nose
   - Breathe into mouth until chest rises

5. **CONTINUE** until help arrives or person responds

**🔴 This is a life-threatening emergency. Every second counts.**`,

	CategoryChoking: `🚨 **EMERGENCY - CHOKING**

**CALL 112 (India) / 911 (US) / 999 (UK)**

**For ADULTS - Heimlich Maneuver:**

1. Stand behind the person
2. Make a fist with one hand
3. Place fist just above the belly button
4. Grasp fist with other hand
5. Give quick, upward thrusts
6. Repeat until object is expelled

**For INFANTS (under 1 year):**
1. Place face-down on your forearm
2. Give 5 back blows between shoulder blades
3. Turn over, give 5 chest thrusts
4. Repeat until object comes out

**If person becomes unconscious, start CPR.**

**🔴 This is a life-threatening emergency.**`,

	CategoryCardiac: `🚨 **EMERGENCY - POSSIBLE HEART ATTACK**

**CALL 112 (India) / 911 (US) / 999 (UK) IMMEDIATELY**

**While waiting for help:**

1. Have the person sit or lie in a comfortable position
2. Loosen any tight clothing
3. If available and not allergic, give aspirin (325mg, chew don't swallow)
4. Stay calm and reassure the person
5. Be prepared to perform CPR if they become unresponsive
6. Do NOT let them walk or exert themselves

**Warning signs:**
- Chest pain or pressure
- Pain spreading to arm, jaw, or back
- Shortness of breath
- Cold sweat, nausea
- Lightheadedness

**🔴 Do NOT drive yourself to the hospital. Wait for ambulance.**`,

	CategoryStroke: `🚨 **EMERGENCY - POSSIBLE STROKE**

**CALL 112 (India) / 911 (US) / 999 (UK) IMMEDIATELY**

**Remember F.A.S.T.:**

- **F**ace: Ask them to smile. Does one side droop?
- **A**rms: Ask them to raise both arms. Does one drift down?
- **S**peech: Ask them to repeat a phrase. Is it slurred?
- **T**ime: If ANY of these signs, call emergency immediately!

**While waiting:**
1. Note the TIME symptoms started (critical for treatment)
2. Keep them calm and lying down
3. Do NOT give food, water, or medication
4. Loosen tight clothing
5. If unconscious, place in recovery position

**🔴 Time is brain. Every minute matters.**`,

	CategoryMentalHealth: `🚨 **You Are Not Alone - Help Is Available**

**Please reach out to someone right now:**

**Crisis Helplines:**
- 🇮🇳 India: iCall - 9152987821 | Vandrevala Foundation - 1860-2662-345
- 🇺🇸 USA: 988 (Suicide & Crisis Lifeline)
- 🇬🇧 UK: 116 123 (Samaritans)
- 🌍 International: findahelpline.com

**If you or someone is in immediate danger:**
Call 112 (India) / 911 (US) / 999 (UK)

**Remember:**
- This feeling is temporary
- You matter and your life has value
- Professional help works - millions have recovered
- Reaching out is a sign of strength, not weakness

**Please talk to someone. We care about you. 💙**`,

	CategoryPoisoning: `🚨 **EMERGENCY - POISONING / OVERDOSE**

**CALL POISON CONTROL IMMEDIATELY:**
- 🇮🇳 India: 1800-11-6117 (AIIMS)
- 🇺🇸 USA: 1-800-222-1222
- 🇬🇧 UK: 111

**Do NOT:**
- Induce vomiting unless told to by poison control
- Give anything to eat or drink
- Wait for symptoms to appear

**Do:**
1. Call poison control immediately
2. Have the container/substance ready to describe
3. Know the person's age and weight
4. Note the time of exposure
5. If on skin, remove clothing and rinse with water
6. If in eyes, rinse with water for 15-20 minutes

**🔴 This is a medical emergency. Call immediately.**`,

	CategoryAllergicReaction: `🚨 **EMERGENCY - SEVERE ALLERGIC REACTION (ANAPHYLAXIS)**

**CALL 112 (India) / 911 (US) / 999 (UK)**

**If person has an EpiPen:**
1. Remove blue safety cap
2. Press orange tip firmly into outer thigh
3. Hold for 10 seconds
4. Note the time

**While waiting for help:**
1. Have person lie down with legs elevated
2. Loosen tight clothing
3. If vomiting, turn on side
4. Stay with them constantly
5. Be ready to perform CPR

**Signs of anaphylaxis:**
- Difficulty breathing, wheezing
- Swelling of face, lips, tongue
- Rapid heartbeat
- Dizziness or fainting
- Hives or rash

**🔴 Anaphylaxis can be fatal within minutes. Call immediately.**`,

	CategorySevereBleeding: `🚨 **EMERGENCY - SEVERE BLEEDING**

**CALL 112 (India) / 911 (US) / 999 (UK)**

**Immediate steps:**

1. **Apply direct pressure** - Use clean cloth, press firmly
2. **Don't remove the cloth** - Add more layers on top if soaked
3. **Elevate** - Raise injured area above heart level if possible
4. **Apply pressure to pressure points** if direct pressure doesn't work
5. **Use tourniquet** only as last resort for life-threatening limb bleeding

**Do NOT:**
- Remove embedded objects
- Apply tourniquet unless trained and necessary
- Stop applying pressure to check the wound

**🔴 Call emergency services immediately for severe bleeding.**`,
}
